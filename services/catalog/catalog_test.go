package catalog

import (
	"testing"

	"github.com/SacredMindInfotech/SacredMind-sub001/models"
	coursemodels "github.com/SacredMindInfotech/SacredMind-sub001/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Course{},
		&models.DiscountToken{},
		&models.DiscountTokenCourse{},
		&coursemodels.Module{},
		&coursemodels.Topic{},
		&coursemodels.Content{},
	))
	return db
}

func createCourse(t *testing.T, db *gorm.DB, categoryID uint, title string) *models.Course {
	t.Helper()
	course := models.Course{
		CategoryID:  categoryID,
		Title:       title,
		Price:       1000,
		IsActive:    true,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}
