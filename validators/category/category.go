package categoryValidator

import (
	"strconv"
	"strings"

	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory validates category creation request
func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			ParentID    *uint  `json:"parent_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Name == "" {
			errors["name"] = "Category name is required!"
		} else if len(reqData.Name) < 2 {
			errors["name"] = "Category name must be at least 2 characters long!"
		}

		if reqData.ParentID != nil && *reqData.ParentID == 0 {
			errors["parent_id"] = "Invalid parent category ID!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

// UpdateCategory validates category update request
func UpdateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryIDStr := strings.TrimSpace(c.Params("id"))
		if categoryIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category ID is required!", nil)
		}

		categoryID, err := strconv.Atoi(categoryIDStr)
		if err != nil || categoryID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
		}

		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			ParentID    *uint  `json:"parent_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData.Name = strings.TrimSpace(reqData.Name)

		if reqData.Name != "" && len(reqData.Name) < 2 {
			errors["name"] = "Category name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("categoryID", categoryID)
		c.Locals("validatedCategoryUpdate", reqData)
		return c.Next()
	}
}

// CategoryID validates requests that only carry a category id
func CategoryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryIDStr := strings.TrimSpace(c.Params("id"))
		if categoryIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category ID is required!", nil)
		}

		categoryID, err := strconv.Atoi(categoryIDStr)
		if err != nil || categoryID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
		}

		c.Locals("categoryID", categoryID)
		return c.Next()
	}
}

// ListCategories validates the display filter/sort query parameters
func ListCategories() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := new(struct {
			Name             string
			MinSubcategories int
			MaxSubcategories int
			HasSubcategories *bool
			SortBy           string
			Descending       bool
		})

		filter.Name = strings.TrimSpace(c.Query("name"))
		filter.MinSubcategories = c.QueryInt("min_subcategories", 0)
		filter.MaxSubcategories = c.QueryInt("max_subcategories", -1)

		if raw := c.Query("has_subcategories"); raw != "" {
			has, err := strconv.ParseBool(raw)
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid has_subcategories value!", nil)
			}
			filter.HasSubcategories = &has
		}

		filter.SortBy = strings.TrimSpace(c.Query("sort_by"))
		if filter.SortBy != "" && filter.SortBy != "name" && filter.SortBy != "subcategory_count" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "sort_by must be name or subcategory_count!", nil)
		}
		filter.Descending = strings.EqualFold(c.Query("order"), "desc")

		c.Locals("validatedCategoryFilter", filter)
		return c.Next()
	}
}
