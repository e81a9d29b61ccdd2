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

// AdminCreateCategory creates a new category or subcategory
func AdminCreateCategory(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	reqData, ok := c.Locals("validatedCategory").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ParentID    *uint  `json:"parent_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category, err := catalog.AddCategory(database.Database.Db, reqData.Name, reqData.Description, reqData.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDuplicateName):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A category with that name already exists!", nil)
		case errors.Is(err, catalog.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent category not found!", nil)
		case errors.Is(err, catalog.ErrInvalidParent):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Subcategories cannot have their own subcategories!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	utils.NotifyCatalogChanged("category", category.ID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// AdminUpdateCategory renames or reparents a category
func AdminUpdateCategory(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	categoryID := c.Locals("categoryID").(int)

	reqData, ok := c.Locals("validatedCategoryUpdate").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ParentID    *uint  `json:"parent_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category, err := catalog.UpdateCategory(database.Database.Db, uint(categoryID), reqData.Name, reqData.Description, reqData.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		case errors.Is(err, catalog.ErrDuplicateName):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A category with that name already exists!", nil)
		case errors.Is(err, catalog.ErrInvalidParent):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid parent category!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	utils.NotifyCatalogChanged("category", category.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// AdminDeleteCategory deletes a category once it owns no courses
func AdminDeleteCategory(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	categoryID := c.Locals("categoryID").(int)

	if err := catalog.DeleteCategory(database.Database.Db, uint(categoryID)); err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		case errors.Is(err, catalog.ErrNotEmpty):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category still has courses attached. Move or delete them first!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	utils.NotifyCatalogChanged("category", uint(categoryID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}

// AdminListCategories lists all categories with aggregates for admin
func AdminListCategories(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	views, err := catalog.ListWithAggregates(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", fiber.Map{
		"categories": views,
	})
}
