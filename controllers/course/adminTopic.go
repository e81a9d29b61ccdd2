package controllers

import (
	"errors"

	"github.com/SacredMindInfotech/SacredMind-sub001/database"
	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"
	coursemodels "github.com/SacredMindInfotech/SacredMind-sub001/models/course"
	"github.com/SacredMindInfotech/SacredMind-sub001/services/catalog"
	"github.com/SacredMindInfotech/SacredMind-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateTopic adds a topic to a module
func AdminCreateTopic(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	reqData, ok := c.Locals("validatedTopic").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		SerialNumber int    `json:"serial_number"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	topic, err := catalog.AddTopic(database.Database.Db, uint(moduleID), reqData.Title, reqData.Description, reqData.SerialNumber)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic created successfully!", topic)
}

// AdminUpdateTopic updates a topic's title, description or display position
func AdminUpdateTopic(c *fiber.Ctx) error {
	topicID := c.Locals("topicID").(int)

	reqData, ok := c.Locals("validatedTopicUpdate").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		SerialNumber int    `json:"serial_number"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	topic, err := catalog.UpdateTopic(database.Database.Db, uint(topicID), reqData.Title, reqData.Description, reqData.SerialNumber)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic updated successfully!", topic)
}

// AdminDeleteTopic deletes a topic of a module together with its content
func AdminDeleteTopic(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)
	topicID := c.Locals("topicID").(int)

	removedContents, err := catalog.DeleteTopic(database.Database.Db, uint(moduleID), uint(topicID))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete topic!", nil)
	}

	for _, content := range removedContents {
		utils.DeleteStoredFile(content.Key)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic deleted successfully!", nil)
}

// AdminListTopics lists a module's topics in display order together with the
// suggested serial number for the next topic.
func AdminListTopics(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	var module coursemodels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var topics []coursemodels.Topic
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Order("serial_number asc, id asc").Find(&topics).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch topics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topics fetched successfully!", fiber.Map{
		"topics":             topics,
		"next_serial_number": catalog.NextTopicSerial(database.Database.Db, uint(moduleID)),
	})
}
