package controllers

import (
	"errors"

	"github.com/SacredMindInfotech/SacredMind-sub001/database"
	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"
	"github.com/SacredMindInfotech/SacredMind-sub001/services/catalog"

	"github.com/gofiber/fiber/v2"
)

// GetCategories returns the storefront category listing with course and
// subcategory counts, filtered and sorted per the query parameters.
func GetCategories(c *fiber.Ctx) error {
	filter, ok := c.Locals("validatedCategoryFilter").(*struct {
		Name             string
		MinSubcategories int
		MaxSubcategories int
		HasSubcategories *bool
		SortBy           string
		Descending       bool
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	views, err := catalog.ListWithAggregates(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	views = catalog.FilterByName(views, filter.Name)
	views = catalog.FilterBySubcategoryCount(views, filter.MinSubcategories, filter.MaxSubcategories)
	if filter.HasSubcategories != nil {
		views = catalog.FilterHasSubcategories(views, *filter.HasSubcategories)
	}

	switch filter.SortBy {
	case "subcategory_count":
		views = catalog.SortBySubcategoryCount(views, !filter.Descending)
	default:
		views = catalog.SortByName(views, !filter.Descending)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", fiber.Map{
		"categories": views,
	})
}

// GetCategoryByName resolves one category by its name for slug-style lookups
func GetCategoryByName(c *fiber.Ctx) error {
	name := c.Params("name")

	view, err := catalog.GetCategoryByName(database.Database.Db, name)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched successfully!", view)
}
