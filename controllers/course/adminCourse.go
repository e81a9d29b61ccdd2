package controllers

import (
	"errors"

	"github.com/SacredMindInfotech/SacredMind-sub001/database"
	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"
	"github.com/SacredMindInfotech/SacredMind-sub001/models"
	"github.com/SacredMindInfotech/SacredMind-sub001/services/catalog"
	"github.com/SacredMindInfotech/SacredMind-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// Admin handlers rely on the route chain running middleware.JWTMiddleware
// followed by middleware.RequireRole("ADMIN") before they execute.

// AdminCreateCourse creates a new course in DRAFT (unpublished) state
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		CategoryID   uint   `json:"category_id"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		Author       string `json:"author"`
		Price        int64  `json:"price"`
		Duration     int64  `json:"duration"`
		ThumbnailURL string `json:"thumbnail_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := catalog.EnsureCourseCategory(database.Database.Db, reqData.CategoryID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		case errors.Is(err, catalog.ErrInvalidParent):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Pick a subcategory of this category for the course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	course := models.Course{
		CategoryID:   reqData.CategoryID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		Author:       reqData.Author,
		Price:        reqData.Price,
		Duration:     reqData.Duration,
		ThumbnailURL: reqData.ThumbnailURL,
		IsActive:     true,
		IsPublished:  false,
	}
	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	utils.NotifyCatalogChanged("course", course.ID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates course metadata; zero-valued fields keep current values
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		CategoryID   uint   `json:"category_id"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		Author       string `json:"author"`
		Price        *int64 `json:"price"`
		Duration     int64  `json:"duration"`
		ThumbnailURL string `json:"thumbnail_url"`
		IsActive     *bool  `json:"is_active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.CategoryID != 0 && reqData.CategoryID != course.CategoryID {
		if err := catalog.EnsureCourseCategory(database.Database.Db, reqData.CategoryID); err != nil {
			switch {
			case errors.Is(err, catalog.ErrNotFound):
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
			case errors.Is(err, catalog.ErrInvalidParent):
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Pick a subcategory of this category for the course!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}
		course.CategoryID = reqData.CategoryID
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Author != "" {
		course.Author = reqData.Author
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Duration > 0 {
		course.Duration = reqData.Duration
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.IsActive != nil {
		course.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	utils.NotifyCatalogChanged("course", course.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse deletes a course and its whole module tree
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	removedContents, err := catalog.DeleteCourse(database.Database.Db, uint(courseID))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	for _, content := range removedContents {
		utils.DeleteStoredFile(content.Key)
	}

	utils.NotifyCatalogChanged("course", uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists every course, drafts included, with pagination
func AdminGetAllCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	database.Database.Db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&total)

	var courses []models.Course
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at desc").Limit(limit).Offset(offset).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// AdminGetCourseDetails returns one course with its full module tree
func AdminGetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	modules, err := catalog.ListModules(database.Database.Db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":  course,
		"modules": modules,
	})
}

// AdminPublishCourse flips a course's published flag and notifies the admin inbox
func AdminPublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	publish := c.Locals("publishStatus").(bool)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	wasPublished := course.IsPublished
	course.IsPublished = publish
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	if publish && !wasPublished {
		go utils.SendCoursePublishedEmail(course.Title)
	}

	utils.NotifyCatalogChanged("course", course.ID)

	message := "Course unpublished successfully!"
	if publish {
		message = "Course published successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, course)
}
