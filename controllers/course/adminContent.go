package controllers

import (
	"errors"

	"github.com/SacredMindInfotech/SacredMind-sub001/config"
	"github.com/SacredMindInfotech/SacredMind-sub001/database"
	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"
	"github.com/SacredMindInfotech/SacredMind-sub001/services/catalog"
	"github.com/SacredMindInfotech/SacredMind-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateContent uploads a file and records it under a topic. The file is
// stored first; the record is only created once the upload succeeded.
func AdminCreateContent(c *fiber.Ctx) error {
	topicID := c.Locals("topicID").(int)
	name := c.Locals("contentName").(string)
	contentType := c.Locals("contentType").(string)

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A file upload is required!", nil)
	}
	if file.Size > int64(config.AppConfig.MaxUploadSize)*1024*1024 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is too large!", nil)
	}

	if contentType == "" {
		contentType = catalog.InferContentType(file.Filename, "")
	}

	key := utils.NewStorageKey(file.Filename)
	if _, err := utils.SaveUploadedFile(file, key); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store uploaded file!", nil)
	}

	content, err := catalog.AddContent(database.Database.Db, uint(topicID), name, contentType, key)
	if err != nil {
		utils.DeleteStoredFile(key)
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
		case errors.Is(err, catalog.ErrInvalidName):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content name must not contain a period!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content uploaded successfully!", fiber.Map{
		"content": content,
		"url":     utils.GetFileURL(content.Key),
	})
}

// AdminUpdateContent renames a content item; file and type never change
func AdminUpdateContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)
	name := c.Locals("contentName").(string)

	content, err := catalog.UpdateContent(database.Database.Db, uint(contentID), name)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
		case errors.Is(err, catalog.ErrInvalidName):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content name must not contain a period!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", content)
}

// AdminDeleteContent deletes a content record, then drops the stored file
func AdminDeleteContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	content, err := catalog.DeleteContent(database.Database.Db, uint(contentID))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	utils.DeleteStoredFile(content.Key)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}
