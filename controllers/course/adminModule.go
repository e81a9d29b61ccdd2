package controllers

import (
	"errors"

	"github.com/SacredMindInfotech/SacredMind-sub001/database"
	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"
	"github.com/SacredMindInfotech/SacredMind-sub001/services/catalog"
	"github.com/SacredMindInfotech/SacredMind-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateModule adds a module to a course
func AdminCreateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedModule").(*struct {
		Title        string `json:"title"`
		SerialNumber int    `json:"serial_number"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module, err := catalog.AddModule(database.Database.Db, uint(courseID), reqData.Title, reqData.SerialNumber)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	utils.NotifyCatalogChanged("course", uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminUpdateModule renames a module or moves it in the display order
func AdminUpdateModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	reqData, ok := c.Locals("validatedModuleUpdate").(*struct {
		Title        string `json:"title"`
		SerialNumber int    `json:"serial_number"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module, err := catalog.UpdateModule(database.Database.Db, uint(moduleID), reqData.Title, reqData.SerialNumber)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	utils.NotifyCatalogChanged("course", module.CourseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminDeleteModule deletes a module with all its topics and content
func AdminDeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	removedContents, err := catalog.DeleteModule(database.Database.Db, uint(moduleID))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	for _, content := range removedContents {
		utils.DeleteStoredFile(content.Key)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// AdminListModules returns a course's module tree in display order together
// with the suggested serial number for the next module.
func AdminListModules(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	modules, err := catalog.ListModules(database.Database.Db, uint(courseID))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules":            modules,
		"next_serial_number": catalog.NextModuleSerial(database.Database.Db, uint(courseID)),
	})
}
