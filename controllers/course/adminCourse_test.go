package controllers

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/SacredMindInfotech/SacredMind-sub001/config"
	"github.com/SacredMindInfotech/SacredMind-sub001/database"
	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"
	"github.com/SacredMindInfotech/SacredMind-sub001/models"
	coursemodels "github.com/SacredMindInfotech/SacredMind-sub001/models/course"
	courseValidator "github.com/SacredMindInfotech/SacredMind-sub001/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
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
		&coursemodels.Module{},
		&coursemodels.Topic{},
		&coursemodels.Content{},
	))

	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Delete("/admin/course/:id",
		courseValidator.CourseID(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"),
		AdminDeleteCourse)
	return app
}

func createTestUser(t *testing.T, role string) *models.User {
	t.Helper()
	user := models.User{
		Name:     "Test " + role,
		Email:    role + "@example.com",
		Role:     role,
		Password: "hashed",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return &user
}

func TestDeleteCourseRequiresAdminRole(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	admin := createTestUser(t, "ADMIN")
	user := createTestUser(t, "USER")

	category := models.Category{Name: "Tech"}
	require.NoError(t, db.Create(&category).Error)
	course := models.Course{CategoryID: category.ID, Title: "Go Course", Price: 1000}
	require.NoError(t, db.Create(&course).Error)

	deleteCourse := func(u *models.User) int {
		token, err := middleware.GenerateJWT(u.ID, u.Name, u.Role, u.Email)
		require.NoError(t, err)

		req := httptest.NewRequest("DELETE", fmt.Sprintf("/admin/course/%d", course.ID), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	liveCourses := func() int64 {
		var count int64
		db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&count)
		return count
	}

	// A regular user is rejected and the course stays put.
	assert.Equal(t, fiber.StatusForbidden, deleteCourse(user))
	assert.Equal(t, int64(1), liveCourses())

	// No token at all is rejected too.
	req := httptest.NewRequest("DELETE", fmt.Sprintf("/admin/course/%d", course.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(1), liveCourses())

	// The admin goes through.
	assert.Equal(t, fiber.StatusOK, deleteCourse(admin))
	assert.Equal(t, int64(0), liveCourses())
}
