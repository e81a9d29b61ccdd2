package catalog

import (
	"github.com/SacredMindInfotech/SacredMind-sub001/models"
	coursemodels "github.com/SacredMindInfotech/SacredMind-sub001/models/course"

	"gorm.io/gorm"
)

// SubcategoryCourses is one storefront group: a subcategory and the published
// courses referencing it.
type SubcategoryCourses struct {
	Category models.Category `json:"category"`
	Courses  []models.Course `json:"courses"`
}

// ContentRow is one line of the flattened content listing, carrying enough of
// the module/topic path to render a syllabus table.
type ContentRow struct {
	ModuleID    uint                 `json:"module_id"`
	ModuleTitle string               `json:"module_title"`
	TopicID     uint                 `json:"topic_id"`
	TopicTitle  string               `json:"topic_title"`
	Content     coursemodels.Content `json:"content"`
}

// CoursesGroupedBySubcategory lists published, active courses of a top-level
// category grouped per subcategory. A category without subcategories yields a
// single group for the category itself.
func CoursesGroupedBySubcategory(db *gorm.DB, categoryID uint) ([]SubcategoryCourses, error) {
	var category models.Category
	if err := db.Where("id = ? AND is_deleted = ?", categoryID, false).First(&category).Error; err != nil {
		return nil, ErrNotFound
	}

	var children []models.Category
	if err := db.Where("parent_id = ? AND is_deleted = ?", categoryID, false).Order("name asc").Find(&children).Error; err != nil {
		return nil, err
	}
	if len(children) == 0 {
		children = []models.Category{category}
	}

	groups := make([]SubcategoryCourses, 0, len(children))
	for _, child := range children {
		var courses []models.Course
		if err := db.Where("category_id = ? AND is_published = ? AND is_active = ? AND is_deleted = ?",
			child.ID, true, true, false).Order("title asc").Find(&courses).Error; err != nil {
			return nil, err
		}
		groups = append(groups, SubcategoryCourses{Category: child, Courses: courses})
	}
	return groups, nil
}

// FlattenContent walks the course tree in display order and emits one row per
// content item.
func FlattenContent(db *gorm.DB, courseID uint) ([]ContentRow, error) {
	modules, err := ListModules(db, courseID)
	if err != nil {
		return nil, err
	}

	rows := []ContentRow{}
	for _, module := range modules {
		for _, topic := range module.Topics {
			for _, content := range topic.Contents {
				rows = append(rows, ContentRow{
					ModuleID:    module.ID,
					ModuleTitle: module.Title,
					TopicID:     topic.ID,
					TopicTitle:  topic.Title,
					Content:     content,
				})
			}
		}
	}
	return rows, nil
}
