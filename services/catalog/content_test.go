package catalog

import (
	"testing"

	coursemodels "github.com/SacredMindInfotech/SacredMind-sub001/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferContentType(t *testing.T) {
	cases := []struct {
		filename string
		fallback string
		want     string
	}{
		{"intro.mp4", "", coursemodels.ContentVideo},
		{"clip.MOV", "", coursemodels.ContentVideo},
		{"handout.pdf", "", coursemodels.ContentPDF},
		{"sheet.XLSX", "", coursemodels.ContentExcel},
		{"data.csv", "", coursemodels.ContentExcel},
		{"diagram.png", "", coursemodels.ContentImage},
		{"photo.JPeG", "", coursemodels.ContentImage},
		{"notes.txt", "", coursemodels.ContentText},
		{"archive.zip", coursemodels.ContentPDF, coursemodels.ContentPDF},
		{"noextension", "", coursemodels.ContentText},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, InferContentType(tc.filename, tc.fallback), tc.filename)
	}
}

func TestDeleteModuleCascades(t *testing.T) {
	db := testDB(t)

	category, err := AddCategory(db, "Tech", "", nil)
	require.NoError(t, err)
	course := createCourse(t, db, category.ID, "Go Course")

	module1, err := AddModule(db, course.ID, "Basics", 1)
	require.NoError(t, err)
	module2, err := AddModule(db, course.ID, "Advanced", 2)
	require.NoError(t, err)

	var allContents []coursemodels.Content
	for _, module := range []*coursemodels.Module{module1, module2} {
		for i, title := range []string{"Intro", "Deep Dive"} {
			topic, err := AddTopic(db, module.ID, title, "", i+1)
			require.NoError(t, err)
			content, err := AddContent(db, topic.ID, "lecture", coursemodels.ContentVideo, "key-"+topic.Title)
			require.NoError(t, err)
			allContents = append(allContents, *content)
		}
	}

	removed, err := DeleteModule(db, module1.ID)
	require.NoError(t, err)
	assert.Len(t, removed, 2)

	// Only module 2's subtree remains; no orphan topics or content.
	views, err := ListModules(db, course.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, module2.ID, views[0].ID)
	require.Len(t, views[0].Topics, 2)
	for _, topic := range views[0].Topics {
		assert.Equal(t, module2.ID, topic.ModuleID)
		assert.Len(t, topic.Contents, 1)
	}

	var liveTopics int64
	db.Model(&coursemodels.Topic{}).Where("is_deleted = ?", false).Count(&liveTopics)
	assert.Equal(t, int64(2), liveTopics)
	var liveContents int64
	db.Model(&coursemodels.Content{}).Where("is_deleted = ?", false).Count(&liveContents)
	assert.Equal(t, int64(2), liveContents)
}

func TestDeleteTopicCascadesToContent(t *testing.T) {
	db := testDB(t)

	category, err := AddCategory(db, "Tech", "", nil)
	require.NoError(t, err)
	course := createCourse(t, db, category.ID, "Go Course")
	module, err := AddModule(db, course.ID, "Basics", 1)
	require.NoError(t, err)
	topic, err := AddTopic(db, module.ID, "Intro", "", 1)
	require.NoError(t, err)
	_, err = AddContent(db, topic.ID, "slides", coursemodels.ContentPDF, "key-1")
	require.NoError(t, err)
	_, err = AddContent(db, topic.ID, "recording", coursemodels.ContentVideo, "key-2")
	require.NoError(t, err)

	removed, err := DeleteTopic(db, module.ID, topic.ID)
	require.NoError(t, err)
	assert.Len(t, removed, 2)

	var liveContents int64
	db.Model(&coursemodels.Content{}).Where("is_deleted = ?", false).Count(&liveContents)
	assert.Zero(t, liveContents)

	// Wrong module id is NotFound, nothing removed.
	_, err = DeleteTopic(db, module.ID+1, topic.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentNameRejectsPeriod(t *testing.T) {
	db := testDB(t)

	category, err := AddCategory(db, "Tech", "", nil)
	require.NoError(t, err)
	course := createCourse(t, db, category.ID, "Go Course")
	module, err := AddModule(db, course.ID, "Basics", 1)
	require.NoError(t, err)
	topic, err := AddTopic(db, module.ID, "Intro", "", 1)
	require.NoError(t, err)

	_, err = AddContent(db, topic.ID, "lecture.1", coursemodels.ContentVideo, "key-1")
	assert.ErrorIs(t, err, ErrInvalidName)

	content, err := AddContent(db, topic.ID, "lecture 1", coursemodels.ContentVideo, "key-1")
	require.NoError(t, err)

	_, err = UpdateContent(db, content.ID, "lecture.2")
	assert.ErrorIs(t, err, ErrInvalidName)

	renamed, err := UpdateContent(db, content.ID, "lecture 2")
	require.NoError(t, err)
	assert.Equal(t, "lecture 2", renamed.Name)
	// Key and type never change after creation.
	assert.Equal(t, "key-1", renamed.Key)
	assert.Equal(t, coursemodels.ContentVideo, renamed.Type)
}

func TestDeleteCourseCascadesWholeTree(t *testing.T) {
	db := testDB(t)

	category, err := AddCategory(db, "Tech", "", nil)
	require.NoError(t, err)
	course := createCourse(t, db, category.ID, "Go Course")
	other := createCourse(t, db, category.ID, "Rust Course")

	module, err := AddModule(db, course.ID, "Basics", 1)
	require.NoError(t, err)
	topic, err := AddTopic(db, module.ID, "Intro", "", 1)
	require.NoError(t, err)
	_, err = AddContent(db, topic.ID, "slides", coursemodels.ContentPDF, "key-1")
	require.NoError(t, err)

	otherModule, err := AddModule(db, other.ID, "Basics", 1)
	require.NoError(t, err)

	removed, err := DeleteCourse(db, course.ID)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, "key-1", removed[0].Key)

	_, err = ListModules(db, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The other course is untouched.
	views, err := ListModules(db, other.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, otherModule.ID, views[0].ID)

	_, err = DeleteCourse(db, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListModulesOrderingStability(t *testing.T) {
	db := testDB(t)

	category, err := AddCategory(db, "Tech", "", nil)
	require.NoError(t, err)
	course := createCourse(t, db, category.ID, "Go Course")

	// Serial numbers [2, 2, 1] inserted in that order.
	first, err := AddModule(db, course.ID, "First Inserted", 2)
	require.NoError(t, err)
	second, err := AddModule(db, course.ID, "Second Inserted", 2)
	require.NoError(t, err)
	third, err := AddModule(db, course.ID, "Third Inserted", 1)
	require.NoError(t, err)

	views, err := ListModules(db, course.ID)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, third.ID, views[0].ID)
	assert.Equal(t, first.ID, views[1].ID)
	assert.Equal(t, second.ID, views[2].ID)
}

func TestNextSerialSuggestions(t *testing.T) {
	db := testDB(t)

	category, err := AddCategory(db, "Tech", "", nil)
	require.NoError(t, err)
	course := createCourse(t, db, category.ID, "Go Course")

	assert.Equal(t, 1, NextModuleSerial(db, course.ID))

	module, err := AddModule(db, course.ID, "Basics", 7)
	require.NoError(t, err)
	assert.Equal(t, 8, NextModuleSerial(db, course.ID))

	assert.Equal(t, 1, NextTopicSerial(db, module.ID))
	_, err = AddTopic(db, module.ID, "Intro", "", 3)
	require.NoError(t, err)
	assert.Equal(t, 4, NextTopicSerial(db, module.ID))

	// Zero serial on creation picks up the suggestion.
	auto, err := AddModule(db, course.ID, "Auto", 0)
	require.NoError(t, err)
	assert.Equal(t, 8, auto.SerialNumber)
}
