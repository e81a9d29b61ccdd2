package catalog

import (
	"testing"

	"github.com/SacredMindInfotech/SacredMind-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCategoryRejectsDuplicateSiblingName(t *testing.T) {
	db := testDB(t)

	_, err := AddCategory(db, "Finance", "", nil)
	require.NoError(t, err)

	_, err = AddCategory(db, "finance", "", nil)
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Same name under a different parent is fine.
	parent, err := AddCategory(db, "Business", "", nil)
	require.NoError(t, err)
	_, err = AddCategory(db, "Finance", "", &parent.ID)
	assert.NoError(t, err)
}

func TestAddCategoryEnforcesTwoLevels(t *testing.T) {
	db := testDB(t)

	root, err := AddCategory(db, "IT", "", nil)
	require.NoError(t, err)
	sub, err := AddCategory(db, "Networking", "", &root.ID)
	require.NoError(t, err)

	_, err = AddCategory(db, "Routing", "", &sub.ID)
	assert.ErrorIs(t, err, ErrInvalidParent)

	missing := uint(999)
	_, err = AddCategory(db, "Orphan", "", &missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCategoryBlockedByDirectCourses(t *testing.T) {
	db := testDB(t)

	category, err := AddCategory(db, "Design", "", nil)
	require.NoError(t, err)
	createCourse(t, db, category.ID, "Figma Basics")

	err = DeleteCategory(db, category.ID)
	assert.ErrorIs(t, err, ErrNotEmpty)

	// Guard failure leaves the category listed.
	views, err := ListWithAggregates(db)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Design", views[0].Name)
	assert.Equal(t, int64(1), views[0].CourseCount)
}

func TestDeleteCategoryScenario(t *testing.T) {
	db := testDB(t)

	// Create "HR" -> "Payroll" -> one course; deleting "HR" must fail while
	// the descendant owns a course, then succeed once emptied bottom-up.
	hr, err := AddCategory(db, "HR", "", nil)
	require.NoError(t, err)
	payroll, err := AddCategory(db, "Payroll", "", &hr.ID)
	require.NoError(t, err)
	course := createCourse(t, db, payroll.ID, "Payroll 101")

	err = DeleteCategory(db, hr.ID)
	assert.ErrorIs(t, err, ErrNotEmpty)

	require.NoError(t, db.Model(&models.Course{}).Where("id = ?", course.ID).Update("is_deleted", true).Error)

	require.NoError(t, DeleteCategory(db, payroll.ID))
	require.NoError(t, DeleteCategory(db, hr.ID))

	views, err := ListWithAggregates(db)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestDeleteCategoryRemovesEmptyDescendants(t *testing.T) {
	db := testDB(t)

	root, err := AddCategory(db, "Languages", "", nil)
	require.NoError(t, err)
	_, err = AddCategory(db, "Spanish", "", &root.ID)
	require.NoError(t, err)
	_, err = AddCategory(db, "German", "", &root.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteCategory(db, root.ID))

	var count int64
	db.Model(&models.Category{}).Where("is_deleted = ?", false).Count(&count)
	assert.Zero(t, count)
}

func TestListWithAggregatesIsIdempotent(t *testing.T) {
	db := testDB(t)

	root, err := AddCategory(db, "Tech", "", nil)
	require.NoError(t, err)
	sub, err := AddCategory(db, "Go", "", &root.ID)
	require.NoError(t, err)
	createCourse(t, db, sub.ID, "Go Fundamentals")
	createCourse(t, db, sub.ID, "Advanced Go")

	first, err := ListWithAggregates(db)
	require.NoError(t, err)
	second, err := ListWithAggregates(db)
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, first[0].Subcategories, 1)
	assert.Equal(t, int64(2), first[0].Subcategories[0].CourseCount)
	assert.Equal(t, first, second)
}

func TestUpdateCategoryRenameAndReparent(t *testing.T) {
	db := testDB(t)

	root, err := AddCategory(db, "Marketing", "", nil)
	require.NoError(t, err)
	other, err := AddCategory(db, "Sales", "", nil)
	require.NoError(t, err)
	sub, err := AddCategory(db, "SEO", "", &root.ID)
	require.NoError(t, err)

	renamed, err := UpdateCategory(db, sub.ID, "Search Marketing", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Search Marketing", renamed.Name)
	require.NotNil(t, renamed.ParentID)
	assert.Equal(t, root.ID, *renamed.ParentID)

	moved, err := UpdateCategory(db, sub.ID, "", "", &other.ID)
	require.NoError(t, err)
	require.NotNil(t, moved.ParentID)
	assert.Equal(t, other.ID, *moved.ParentID)

	// A category with children cannot become a subcategory.
	_, err = UpdateCategory(db, root.ID, "", "", &other.ID)
	assert.NoError(t, err) // root has no children anymore, move is legal

	deep, err := AddCategory(db, "Email", "", &other.ID)
	require.NoError(t, err)
	_, err = UpdateCategory(db, other.ID, "", "", &deep.ID)
	assert.ErrorIs(t, err, ErrInvalidParent)
}

func TestGetCategoryByName(t *testing.T) {
	db := testDB(t)

	root, err := AddCategory(db, "Compliance", "", nil)
	require.NoError(t, err)
	_, err = AddCategory(db, "GDPR", "", &root.ID)
	require.NoError(t, err)

	view, err := GetCategoryByName(db, "compliance")
	require.NoError(t, err)
	assert.Equal(t, root.ID, view.ID)
	require.Len(t, view.Subcategories, 1)
	assert.Equal(t, "GDPR", view.Subcategories[0].Name)

	_, err = GetCategoryByName(db, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnsureCourseCategory(t *testing.T) {
	db := testDB(t)

	root, err := AddCategory(db, "IT", "", nil)
	require.NoError(t, err)

	// A childless top-level category holds courses directly.
	assert.NoError(t, EnsureCourseCategory(db, root.ID))

	sub, err := AddCategory(db, "Networking", "", &root.ID)
	require.NoError(t, err)

	// Once it has subcategories, courses belong on one of them.
	assert.ErrorIs(t, EnsureCourseCategory(db, root.ID), ErrInvalidParent)
	assert.NoError(t, EnsureCourseCategory(db, sub.ID))

	assert.ErrorIs(t, EnsureCourseCategory(db, 999), ErrNotFound)
}
