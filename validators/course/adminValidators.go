package courseValidator

import (
	"strconv"
	"strings"

	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// ============ Module Validators ============

// CreateModule validates module creation request
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title        string `json:"title"`
			SerialNumber int    `json:"serial_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title == "" {
			errors["title"] = "Module title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Module title must be at least 3 characters long!"
		}

		if reqData.SerialNumber < 0 {
			errors["serial_number"] = "Serial number must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates module update request
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("module_id"))
		if moduleIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title        string `json:"title"`
			SerialNumber int    `json:"serial_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Module title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// ModuleID validates requests that only carry a module id
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("module_id"))
		if moduleIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// ============ Topic Validators ============

// CreateTopic validates topic creation request
func CreateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("module_id"))
		if moduleIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			SerialNumber int    `json:"serial_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Topic title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Topic title must be at least 3 characters long!"
		}

		if reqData.SerialNumber < 0 {
			errors["serial_number"] = "Serial number must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedTopic", reqData)
		return c.Next()
	}
}

// UpdateTopic validates topic update request
func UpdateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		topicIDStr := strings.TrimSpace(c.Params("topic_id"))
		if topicIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Topic ID is required!", nil)
		}

		topicID, err := strconv.Atoi(topicIDStr)
		if err != nil || topicID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Topic ID!", nil)
		}

		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			SerialNumber int    `json:"serial_number"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Topic title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("topicID", topicID)
		c.Locals("validatedTopicUpdate", reqData)
		return c.Next()
	}
}

// DeleteTopic validates topic deletion request
func DeleteTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("module_id"))
		topicIDStr := strings.TrimSpace(c.Params("topic_id"))

		if moduleIDStr == "" || topicIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID and Topic ID are required!", nil)
		}

		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		topicID, err := strconv.Atoi(topicIDStr)
		if err != nil || topicID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Topic ID!", nil)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("topicID", topicID)
		return c.Next()
	}
}

// ============ Content Validators ============

// CreateContentAdmin validates content upload request (multipart form)
func CreateContentAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		topicIDStr := strings.TrimSpace(c.Params("topic_id"))
		if topicIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Topic ID is required!", nil)
		}

		topicID, err := strconv.Atoi(topicIDStr)
		if err != nil || topicID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Topic ID!", nil)
		}

		name := strings.TrimSpace(c.FormValue("name"))
		contentType := strings.TrimSpace(c.FormValue("type"))

		errors := make(map[string]string)

		if name == "" {
			errors["name"] = "Content name is required!"
		} else if strings.Contains(name, ".") {
			errors["name"] = "Content name must not contain a period!"
		}

		if contentType != "" {
			validTypes := map[string]bool{"VIDEO": true, "PDF": true, "EXCEL": true, "TEXT": true, "IMAGE": true}
			if !validTypes[strings.ToUpper(contentType)] {
				errors["type"] = "Type must be VIDEO, PDF, EXCEL, TEXT, or IMAGE!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("topicID", topicID)
		c.Locals("contentName", name)
		c.Locals("contentType", strings.ToUpper(contentType))
		return c.Next()
	}
}

// UpdateContentAdmin validates content rename request
func UpdateContentAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentIDStr := strings.TrimSpace(c.Params("content_id"))
		if contentIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content ID is required!", nil)
		}

		contentID, err := strconv.Atoi(contentIDStr)
		if err != nil || contentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		reqData := new(struct {
			Name string `json:"name"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData.Name = strings.TrimSpace(reqData.Name)

		if reqData.Name == "" {
			errors["name"] = "Content name is required!"
		} else if strings.Contains(reqData.Name, ".") {
			errors["name"] = "Content name must not contain a period!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("contentID", contentID)
		c.Locals("contentName", reqData.Name)
		return c.Next()
	}
}

// DeleteContentAdmin validates content deletion request
func DeleteContentAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentIDStr := strings.TrimSpace(c.Params("content_id"))
		if contentIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content ID is required!", nil)
		}

		contentID, err := strconv.Atoi(contentIDStr)
		if err != nil || contentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		c.Locals("contentID", contentID)
		return c.Next()
	}
}
