// Package catalog implements the catalog hierarchy: the two-level category
// tree and the module/topic/content tree of each course, together with their
// structural guards and read-side projections. Functions take the *gorm.DB to
// operate on so controllers pass the shared handle and tests pass their own.
package catalog

import (
	"strings"

	"github.com/SacredMindInfotech/SacredMind-sub001/models"
	"github.com/SacredMindInfotech/SacredMind-sub001/services/treestore"

	"gorm.io/gorm"
)

// SubcategoryView is a subcategory with its live course count.
type SubcategoryView struct {
	models.Category
	CourseCount int64 `json:"course_count"`
}

// CategoryView is a top-level category with its subcategories attached.
// CourseCount counts courses referencing the top-level category directly.
type CategoryView struct {
	models.Category
	CourseCount   int64             `json:"course_count"`
	Subcategories []SubcategoryView `json:"subcategories"`
}

// AddCategory creates a category or, when parentID is set, a subcategory.
// Sibling names are unique (case-insensitive) and the parent must itself be
// top-level, so the tree never nests deeper than two levels.
func AddCategory(db *gorm.DB, name, description string, parentID *uint) (*models.Category, error) {
	name = strings.TrimSpace(name)

	if parentID != nil {
		var parent models.Category
		if err := db.Where("id = ? AND is_deleted = ?", *parentID, false).First(&parent).Error; err != nil {
			return nil, ErrNotFound
		}
		if parent.ParentID != nil {
			return nil, ErrInvalidParent
		}
	}

	if err := checkSiblingName(db, name, parentID, 0); err != nil {
		return nil, err
	}

	category := models.Category{
		Name:        name,
		Description: description,
		ParentID:    parentID,
	}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames and/or reparents a category. Empty name keeps the
// current one; parentID pointing at a zero value detaches the category to the
// top level. A category that has subcategories cannot become a subcategory.
func UpdateCategory(db *gorm.DB, id uint, name, description string, parentID *uint) (*models.Category, error) {
	var category models.Category
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&category).Error; err != nil {
		return nil, ErrNotFound
	}

	newParent := category.ParentID
	if parentID != nil {
		if *parentID == 0 {
			newParent = nil
		} else {
			if *parentID == id {
				return nil, ErrInvalidParent
			}
			var parent models.Category
			if err := db.Where("id = ? AND is_deleted = ?", *parentID, false).First(&parent).Error; err != nil {
				return nil, ErrNotFound
			}
			if parent.ParentID != nil {
				return nil, ErrInvalidParent
			}
			var childCount int64
			db.Model(&models.Category{}).Where("parent_id = ? AND is_deleted = ?", id, false).Count(&childCount)
			if childCount > 0 {
				return nil, ErrInvalidParent
			}
			newParent = parentID
		}
	}

	newName := category.Name
	if strings.TrimSpace(name) != "" {
		newName = strings.TrimSpace(name)
	}
	if err := checkSiblingName(db, newName, newParent, category.ID); err != nil {
		return nil, err
	}

	category.Name = newName
	category.ParentID = newParent
	if description != "" {
		category.Description = description
	}
	if err := db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category and its empty subcategories. It fails
// with ErrNotEmpty while the category, or any of its subcategories, still has
// courses attached. Deletability is recomputed on every attempt; nothing is
// cached between renders.
func DeleteCategory(db *gorm.DB, id uint) error {
	var category models.Category
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&category).Error; err != nil {
		return ErrNotFound
	}

	if directCourseCount(db, id) > 0 {
		return ErrNotEmpty
	}

	var children []models.Category
	if err := db.Where("parent_id = ? AND is_deleted = ?", id, false).Find(&children).Error; err != nil {
		return err
	}
	for _, child := range children {
		if directCourseCount(db, child.ID) > 0 {
			return ErrNotEmpty
		}
	}

	// The store walks the subtree so the whole set goes in one transaction.
	store := treestore.New("root")
	if err := store.Insert(categoryKey(id), "root", int(id)); err != nil {
		return err
	}
	for _, child := range children {
		if err := store.Insert(categoryKey(child.ID), categoryKey(id), int(child.ID)); err != nil {
			return err
		}
	}
	removed, err := store.Remove(categoryKey(id))
	if err != nil {
		return err
	}

	ids := make([]uint, 0, len(removed))
	for _, key := range removed {
		ids = append(ids, keyID(key))
	}

	tx := db.Begin()
	if err := tx.Model(&models.Category{}).Where("id IN ?", ids).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// ListWithAggregates builds the storefront category view: every top-level
// category with its subcategories and fresh course counts. Counts may be a
// request stale relative to concurrent course edits but are never negative.
func ListWithAggregates(db *gorm.DB) ([]CategoryView, error) {
	var roots []models.Category
	if err := db.Where("parent_id IS NULL AND is_deleted = ?", false).Order("name asc").Find(&roots).Error; err != nil {
		return nil, err
	}

	views := make([]CategoryView, 0, len(roots))
	for _, root := range roots {
		var children []models.Category
		if err := db.Where("parent_id = ? AND is_deleted = ?", root.ID, false).Order("name asc").Find(&children).Error; err != nil {
			return nil, err
		}

		subs := make([]SubcategoryView, 0, len(children))
		for _, child := range children {
			subs = append(subs, SubcategoryView{
				Category:    child,
				CourseCount: directCourseCount(db, child.ID),
			})
		}

		views = append(views, CategoryView{
			Category:      root,
			CourseCount:   directCourseCount(db, root.ID),
			Subcategories: subs,
		})
	}
	return views, nil
}

// GetCategoryByName resolves a category by name (case-insensitive) and
// attaches its subcategories, used for slug-style lookups.
func GetCategoryByName(db *gorm.DB, name string) (*CategoryView, error) {
	var category models.Category
	if err := db.Where("LOWER(name) = LOWER(?) AND is_deleted = ?", strings.TrimSpace(name), false).
		First(&category).Error; err != nil {
		return nil, ErrNotFound
	}

	view := CategoryView{
		Category:    category,
		CourseCount: directCourseCount(db, category.ID),
	}
	var children []models.Category
	if err := db.Where("parent_id = ? AND is_deleted = ?", category.ID, false).Order("name asc").Find(&children).Error; err != nil {
		return nil, err
	}
	for _, child := range children {
		view.Subcategories = append(view.Subcategories, SubcategoryView{
			Category:    child,
			CourseCount: directCourseCount(db, child.ID),
		})
	}
	return &view, nil
}

// EnsureCourseCategory checks that a course may attach to the category: the
// category must exist, and a top-level category that has subcategories cannot
// hold courses directly; the course belongs on one of the subcategories.
func EnsureCourseCategory(db *gorm.DB, categoryID uint) error {
	var category models.Category
	if err := db.Where("id = ? AND is_deleted = ?", categoryID, false).First(&category).Error; err != nil {
		return ErrNotFound
	}
	if category.ParentID == nil {
		var childCount int64
		db.Model(&models.Category{}).Where("parent_id = ? AND is_deleted = ?", categoryID, false).Count(&childCount)
		if childCount > 0 {
			return ErrInvalidParent
		}
	}
	return nil
}

func directCourseCount(db *gorm.DB, categoryID uint) int64 {
	var count int64
	db.Model(&models.Course{}).Where("category_id = ? AND is_deleted = ?", categoryID, false).Count(&count)
	return count
}

func checkSiblingName(db *gorm.DB, name string, parentID *uint, excludeID uint) error {
	query := db.Model(&models.Category{}).Where("LOWER(name) = LOWER(?) AND is_deleted = ?", name, false)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	query.Count(&count)
	if count > 0 {
		return ErrDuplicateName
	}
	return nil
}
