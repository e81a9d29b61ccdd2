package catalog

import (
	"path/filepath"
	"strings"

	"github.com/SacredMindInfotech/SacredMind-sub001/models"
	coursemodels "github.com/SacredMindInfotech/SacredMind-sub001/models/course"
	"github.com/SacredMindInfotech/SacredMind-sub001/services/treestore"

	"gorm.io/gorm"
)

// extensionTypes maps file extensions to content types, consulted only when
// the caller did not choose a type explicitly.
var extensionTypes = map[string]string{
	"mp4":  coursemodels.ContentVideo,
	"mov":  coursemodels.ContentVideo,
	"avi":  coursemodels.ContentVideo,
	"webm": coursemodels.ContentVideo,
	"pdf":  coursemodels.ContentPDF,
	"xls":  coursemodels.ContentExcel,
	"xlsx": coursemodels.ContentExcel,
	"csv":  coursemodels.ContentExcel,
	"jpg":  coursemodels.ContentImage,
	"jpeg": coursemodels.ContentImage,
	"png":  coursemodels.ContentImage,
	"gif":  coursemodels.ContentImage,
	"webp": coursemodels.ContentImage,
}

// InferContentType returns the type matching the filename's extension, or
// fallback when the extension is unrecognized. An explicitly chosen type is
// never overridden; callers pass it straight through instead.
func InferContentType(filename, fallback string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	if fallback == "" {
		return coursemodels.ContentText
	}
	return fallback
}

// TopicView is a topic with its content in insertion order.
type TopicView struct {
	coursemodels.Topic
	Contents []coursemodels.Content `json:"contents"`
}

// ModuleView is a module with its topics ordered by serial number.
type ModuleView struct {
	coursemodels.Module
	Topics []TopicView `json:"topics"`
}

// AddModule creates a module in a course. A zero serial number takes the next
// suggested one.
func AddModule(db *gorm.DB, courseID uint, title string, serialNumber int) (*coursemodels.Module, error) {
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, ErrNotFound
	}

	if serialNumber == 0 {
		serialNumber = NextModuleSerial(db, courseID)
	}

	module := coursemodels.Module{
		CourseID:     courseID,
		Title:        strings.TrimSpace(title),
		SerialNumber: serialNumber,
	}
	if err := db.Create(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

// UpdateModule applies the provided fields; empty/zero values keep current ones.
func UpdateModule(db *gorm.DB, moduleID uint, title string, serialNumber int) (*coursemodels.Module, error) {
	var module coursemodels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return nil, ErrNotFound
	}

	if strings.TrimSpace(title) != "" {
		module.Title = strings.TrimSpace(title)
	}
	if serialNumber > 0 {
		// Duplicate serials among siblings are allowed; insertion order
		// breaks the tie at display time.
		module.SerialNumber = serialNumber
	}
	if err := db.Save(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

// DeleteModule removes the module with all its topics and their content in
// one transaction. It returns the removed content records so the caller can
// clean up the stored files by key.
func DeleteModule(db *gorm.DB, moduleID uint) ([]coursemodels.Content, error) {
	var module coursemodels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return nil, ErrNotFound
	}

	store, contents, err := buildModuleSubtree(db, module)
	if err != nil {
		return nil, err
	}
	removed, err := store.Remove(moduleKey(module.ID))
	if err != nil {
		return nil, err
	}
	topicIDs, contentIDs := splitRemoved(removed)

	tx := db.Begin()
	if err := tx.Model(&coursemodels.Module{}).Where("id = ?", module.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if len(topicIDs) > 0 {
		if err := tx.Model(&coursemodels.Topic{}).Where("id IN ?", topicIDs).Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if len(contentIDs) > 0 {
		if err := tx.Model(&coursemodels.Content{}).Where("id IN ?", contentIDs).Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// AddTopic creates a topic under a module.
func AddTopic(db *gorm.DB, moduleID uint, title, description string, serialNumber int) (*coursemodels.Topic, error) {
	var module coursemodels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return nil, ErrNotFound
	}

	if serialNumber == 0 {
		serialNumber = NextTopicSerial(db, moduleID)
	}

	topic := coursemodels.Topic{
		ModuleID:     moduleID,
		Title:        strings.TrimSpace(title),
		Description:  description,
		SerialNumber: serialNumber,
	}
	if err := db.Create(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// UpdateTopic applies the provided fields; empty/zero values keep current ones.
func UpdateTopic(db *gorm.DB, topicID uint, title, description string, serialNumber int) (*coursemodels.Topic, error) {
	var topic coursemodels.Topic
	if err := db.Where("id = ? AND is_deleted = ?", topicID, false).First(&topic).Error; err != nil {
		return nil, ErrNotFound
	}

	if strings.TrimSpace(title) != "" {
		topic.Title = strings.TrimSpace(title)
	}
	if description != "" {
		topic.Description = description
	}
	if serialNumber > 0 {
		topic.SerialNumber = serialNumber
	}
	if err := db.Save(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// DeleteTopic removes a topic of the given module and all its content in one
// transaction, returning the removed content records for storage cleanup.
func DeleteTopic(db *gorm.DB, moduleID, topicID uint) ([]coursemodels.Content, error) {
	var topic coursemodels.Topic
	if err := db.Where("id = ? AND module_id = ? AND is_deleted = ?", topicID, moduleID, false).First(&topic).Error; err != nil {
		return nil, ErrNotFound
	}

	var contents []coursemodels.Content
	if err := db.Where("topic_id = ? AND is_deleted = ?", topicID, false).Order("id asc").Find(&contents).Error; err != nil {
		return nil, err
	}

	contentIDs := make([]uint, 0, len(contents))
	for _, content := range contents {
		contentIDs = append(contentIDs, content.ID)
	}

	tx := db.Begin()
	if err := tx.Model(&coursemodels.Topic{}).Where("id = ?", topicID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if len(contentIDs) > 0 {
		if err := tx.Model(&coursemodels.Content{}).Where("id IN ?", contentIDs).Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// AddContent records an uploaded file under a topic. The storage key is
// assigned here, once; it never changes afterwards. Callers must have already
// stored the file under that key (a failed upload must not leave a record).
func AddContent(db *gorm.DB, topicID uint, name, contentType, key string) (*coursemodels.Content, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, ".") {
		return nil, ErrInvalidName
	}

	var topic coursemodels.Topic
	if err := db.Where("id = ? AND is_deleted = ?", topicID, false).First(&topic).Error; err != nil {
		return nil, ErrNotFound
	}

	if contentType == "" {
		contentType = coursemodels.ContentText
	}

	content := coursemodels.Content{
		TopicID: topicID,
		Name:    name,
		Type:    contentType,
		Key:     key,
	}
	if err := db.Create(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// UpdateContent renames a content item. Key and type are immutable after
// creation; only the name can change, under the same period guard.
func UpdateContent(db *gorm.DB, contentID uint, name string) (*coursemodels.Content, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, ".") {
		return nil, ErrInvalidName
	}

	var content coursemodels.Content
	if err := db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return nil, ErrNotFound
	}

	content.Name = name
	if err := db.Save(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// DeleteContent removes the content record and returns it so the caller can
// drop the stored file by key.
func DeleteContent(db *gorm.DB, contentID uint) (*coursemodels.Content, error) {
	var content coursemodels.Content
	if err := db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return nil, ErrNotFound
	}

	content.IsDeleted = true
	if err := db.Save(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// DeleteCourse removes a course together with its whole module/topic/content
// tree in one transaction, returning the removed content records for storage
// cleanup.
func DeleteCourse(db *gorm.DB, courseID uint) ([]coursemodels.Content, error) {
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, ErrNotFound
	}

	var modules []coursemodels.Module
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&modules).Error; err != nil {
		return nil, err
	}

	var moduleIDs, topicIDs, contentIDs []uint
	var contents []coursemodels.Content
	for _, module := range modules {
		moduleIDs = append(moduleIDs, module.ID)

		store, moduleContents, err := buildModuleSubtree(db, module)
		if err != nil {
			return nil, err
		}
		removed, err := store.Remove(moduleKey(module.ID))
		if err != nil {
			return nil, err
		}
		removedTopics, removedContents := splitRemoved(removed)
		topicIDs = append(topicIDs, removedTopics...)
		contentIDs = append(contentIDs, removedContents...)
		contents = append(contents, moduleContents...)
	}

	tx := db.Begin()
	if err := tx.Model(&models.Course{}).Where("id = ?", courseID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if len(moduleIDs) > 0 {
		if err := tx.Model(&coursemodels.Module{}).Where("id IN ?", moduleIDs).Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if len(topicIDs) > 0 {
		if err := tx.Model(&coursemodels.Topic{}).Where("id IN ?", topicIDs).Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if len(contentIDs) > 0 {
		if err := tx.Model(&coursemodels.Content{}).Where("id IN ?", contentIDs).Update("is_deleted", true).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// ListModules projects a course's tree in display order: modules by serial
// number ascending, topics likewise, equal serials in insertion order.
// Computed fresh per call, never cached.
func ListModules(db *gorm.DB, courseID uint) ([]ModuleView, error) {
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, ErrNotFound
	}

	var modules []coursemodels.Module
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("id asc").Find(&modules).Error; err != nil {
		return nil, err
	}

	root := courseKey(courseID)
	store := treestore.New(root)
	byModule := make(map[uint]coursemodels.Module, len(modules))
	for _, module := range modules {
		if err := store.Insert(moduleKey(module.ID), root, module.SerialNumber); err != nil {
			return nil, err
		}
		byModule[module.ID] = module
	}

	var topics []coursemodels.Topic
	moduleIDs := make([]uint, 0, len(modules))
	for _, module := range modules {
		moduleIDs = append(moduleIDs, module.ID)
	}
	if len(moduleIDs) > 0 {
		if err := db.Where("module_id IN ? AND is_deleted = ?", moduleIDs, false).Order("id asc").Find(&topics).Error; err != nil {
			return nil, err
		}
	}
	byTopic := make(map[uint]coursemodels.Topic, len(topics))
	for _, topic := range topics {
		if err := store.Insert(topicKey(topic.ID), moduleKey(topic.ModuleID), topic.SerialNumber); err != nil {
			return nil, err
		}
		byTopic[topic.ID] = topic
	}

	views := make([]ModuleView, 0, len(modules))
	for _, moduleNode := range store.Children(root) {
		module := byModule[keyID(moduleNode.ID)]
		view := ModuleView{Module: module, Topics: []TopicView{}}
		for _, topicNode := range store.Children(moduleNode.ID) {
			topic := byTopic[keyID(topicNode.ID)]
			var contents []coursemodels.Content
			if err := db.Where("topic_id = ? AND is_deleted = ?", topic.ID, false).Order("id asc").Find(&contents).Error; err != nil {
				return nil, err
			}
			view.Topics = append(view.Topics, TopicView{Topic: topic, Contents: contents})
		}
		views = append(views, view)
	}
	return views, nil
}

// NextModuleSerial suggests the serial number for a new module: one past the
// current maximum among siblings, 1 when the course has none. Advisory only.
func NextModuleSerial(db *gorm.DB, courseID uint) int {
	var maxSerial int
	db.Model(&coursemodels.Module{}).Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COALESCE(MAX(serial_number), 0)").Scan(&maxSerial)
	return maxSerial + 1
}

// NextTopicSerial suggests the serial number for a new topic in a module.
func NextTopicSerial(db *gorm.DB, moduleID uint) int {
	var maxSerial int
	db.Model(&coursemodels.Topic{}).Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Select("COALESCE(MAX(serial_number), 0)").Scan(&maxSerial)
	return maxSerial + 1
}

func buildModuleSubtree(db *gorm.DB, module coursemodels.Module) (*treestore.Store[string], []coursemodels.Content, error) {
	root := courseKey(module.CourseID)
	store := treestore.New(root)
	if err := store.Insert(moduleKey(module.ID), root, module.SerialNumber); err != nil {
		return nil, nil, err
	}

	var topics []coursemodels.Topic
	if err := db.Where("module_id = ? AND is_deleted = ?", module.ID, false).Order("id asc").Find(&topics).Error; err != nil {
		return nil, nil, err
	}
	topicIDs := make([]uint, 0, len(topics))
	for _, topic := range topics {
		if err := store.Insert(topicKey(topic.ID), moduleKey(topic.ModuleID), topic.SerialNumber); err != nil {
			return nil, nil, err
		}
		topicIDs = append(topicIDs, topic.ID)
	}

	var contents []coursemodels.Content
	if len(topicIDs) > 0 {
		if err := db.Where("topic_id IN ? AND is_deleted = ?", topicIDs, false).Order("id asc").Find(&contents).Error; err != nil {
			return nil, nil, err
		}
	}
	for _, content := range contents {
		if err := store.Insert(contentKey(content.ID), topicKey(content.TopicID), int(content.ID)); err != nil {
			return nil, nil, err
		}
	}
	return store, contents, nil
}

func splitRemoved(removed []string) (topicIDs, contentIDs []uint) {
	for _, key := range removed {
		switch keyKind(key) {
		case "topic":
			topicIDs = append(topicIDs, keyID(key))
		case "content":
			contentIDs = append(contentIDs, keyID(key))
		}
	}
	return topicIDs, contentIDs
}
