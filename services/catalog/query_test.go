package catalog

import (
	"testing"

	"github.com/SacredMindInfotech/SacredMind-sub001/models"
	coursemodels "github.com/SacredMindInfotech/SacredMind-sub001/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedViews(t *testing.T) []CategoryView {
	t.Helper()
	db := testDB(t)

	tech, err := AddCategory(db, "Technology", "", nil)
	require.NoError(t, err)
	_, err = AddCategory(db, "Go", "", &tech.ID)
	require.NoError(t, err)
	_, err = AddCategory(db, "Rust", "", &tech.ID)
	require.NoError(t, err)

	biz, err := AddCategory(db, "Business", "", nil)
	require.NoError(t, err)
	_, err = AddCategory(db, "Accounting", "", &biz.ID)
	require.NoError(t, err)

	_, err = AddCategory(db, "Art", "", nil)
	require.NoError(t, err)

	views, err := ListWithAggregates(db)
	require.NoError(t, err)
	return views
}

func names(views []CategoryView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Name)
	}
	return out
}

func TestFiltersComposeOrderIndependently(t *testing.T) {
	views := seedViews(t)

	a := SortByName(FilterHasSubcategories(views, true), true)
	b := FilterHasSubcategories(SortByName(views, true), true)
	assert.Equal(t, names(a), names(b))
	assert.Equal(t, []string{"Business", "Technology"}, names(a))

	c := FilterBySubcategoryCount(FilterByName(views, "t"), 2, -1)
	d := FilterByName(FilterBySubcategoryCount(views, 2, -1), "t")
	assert.Equal(t, names(c), names(d))
	assert.Equal(t, []string{"Technology"}, names(c))
}

func TestFilterBySubcategoryCountRange(t *testing.T) {
	views := seedViews(t)

	assert.Equal(t, []string{"Art"}, names(FilterBySubcategoryCount(views, 0, 0)))
	assert.Equal(t, []string{"Business"}, names(FilterBySubcategoryCount(views, 1, 1)))
	assert.Len(t, FilterBySubcategoryCount(views, 0, -1), 3)
}

func TestSortBySubcategoryCountDescending(t *testing.T) {
	views := seedViews(t)

	sorted := SortBySubcategoryCount(views, false)
	assert.Equal(t, "Technology", sorted[0].Name)
	assert.Equal(t, "Art", sorted[len(sorted)-1].Name)

	// Input slice untouched.
	assert.ElementsMatch(t, []string{"Art", "Business", "Technology"}, names(views))
}

func TestCoursesGroupedBySubcategory(t *testing.T) {
	db := testDB(t)

	tech, err := AddCategory(db, "Technology", "", nil)
	require.NoError(t, err)
	goSub, err := AddCategory(db, "Go", "", &tech.ID)
	require.NoError(t, err)
	rustSub, err := AddCategory(db, "Rust", "", &tech.ID)
	require.NoError(t, err)

	createCourse(t, db, goSub.ID, "Go Fundamentals")
	unpublished := createCourse(t, db, rustSub.ID, "Rust Draft")
	require.NoError(t, db.Model(&models.Course{}).Where("id = ?", unpublished.ID).Update("is_published", false).Error)

	groups, err := CoursesGroupedBySubcategory(db, tech.ID)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Go", groups[0].Category.Name)
	require.Len(t, groups[0].Courses, 1)
	assert.Empty(t, groups[1].Courses)

	// A category without subcategories groups on itself.
	solo, err := AddCategory(db, "Art", "", nil)
	require.NoError(t, err)
	createCourse(t, db, solo.ID, "Watercolors")
	groups, err = CoursesGroupedBySubcategory(db, solo.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, solo.ID, groups[0].Category.ID)
	assert.Len(t, groups[0].Courses, 1)
}

func TestFlattenContentWalksDisplayOrder(t *testing.T) {
	db := testDB(t)

	category, err := AddCategory(db, "Tech", "", nil)
	require.NoError(t, err)
	course := createCourse(t, db, category.ID, "Go Course")

	moduleB, err := AddModule(db, course.ID, "Later", 2)
	require.NoError(t, err)
	moduleA, err := AddModule(db, course.ID, "Earlier", 1)
	require.NoError(t, err)

	topicB, err := AddTopic(db, moduleB.ID, "B Topic", "", 1)
	require.NoError(t, err)
	topicA, err := AddTopic(db, moduleA.ID, "A Topic", "", 1)
	require.NoError(t, err)

	_, err = AddContent(db, topicB.ID, "b item", coursemodels.ContentText, "key-b")
	require.NoError(t, err)
	_, err = AddContent(db, topicA.ID, "a item", coursemodels.ContentText, "key-a")
	require.NoError(t, err)

	rows, err := FlattenContent(db, course.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Earlier", rows[0].ModuleTitle)
	assert.Equal(t, "a item", rows[0].Content.Name)
	assert.Equal(t, "Later", rows[1].ModuleTitle)
}
