package controllers

import (
	"errors"
	"time"

	"github.com/SacredMindInfotech/SacredMind-sub001/database"
	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"
	"github.com/SacredMindInfotech/SacredMind-sub001/models"
	"github.com/SacredMindInfotech/SacredMind-sub001/services/catalog"
	"github.com/SacredMindInfotech/SacredMind-sub001/services/pricing"

	"github.com/gofiber/fiber/v2"
)

// courseListing is a published course with its current quote attached.
type courseListing struct {
	models.Course
	DiscountedPrice int64 `json:"discounted_price"`
	DiscountAmount  int64 `json:"discount_amount"`
	OnOffer         bool  `json:"on_offer"`
}

func withOffers(courses []models.Course, now time.Time) ([]courseListing, error) {
	offers, err := pricing.OnOffer(database.Database.Db, courses, now)
	if err != nil {
		return nil, err
	}
	listings := make([]courseListing, 0, len(courses))
	for _, course := range courses {
		offer := offers[course.ID]
		listings = append(listings, courseListing{
			Course:          course,
			DiscountedPrice: offer.DiscountedPrice,
			DiscountAmount:  offer.DiscountAmount,
			OnOffer:         offer.OnOffer,
		})
	}
	return listings, nil
}

// GetCourses lists published courses. With a category_id it groups them per
// subcategory the way the storefront renders a category page; without one it
// returns a flat listing. Every course carries its current quote.
func GetCourses(c *fiber.Ctx) error {
	now := time.Now()

	if categoryID := c.QueryInt("category_id", 0); categoryID > 0 {
		groups, err := catalog.CoursesGroupedBySubcategory(database.Database.Db, uint(categoryID))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}

		type groupListing struct {
			Category models.Category `json:"category"`
			Courses  []courseListing `json:"courses"`
		}
		out := make([]groupListing, 0, len(groups))
		for _, group := range groups {
			listings, err := withOffers(group.Courses, now)
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
			}
			out = append(out, groupListing{Category: group.Category, Courses: listings})
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
			"groups": out,
		})
	}

	var courses []models.Course
	if err := database.Database.Db.Where("is_published = ? AND is_active = ? AND is_deleted = ?", true, true, false).
		Order("title asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	listings, err := withOffers(courses, now)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": listings,
	})
}

// GetCourseDetails returns one published course with its quote
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_published = ? AND is_active = ? AND is_deleted = ?",
		courseID, true, true, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	quote, err := pricing.EffectivePrice(database.Database.Db, course.ID, course.Price, time.Now())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", courseListing{
		Course:          course,
		DiscountedPrice: quote.DiscountedPrice,
		DiscountAmount:  quote.DiscountAmount,
		OnOffer:         quote.DiscountAmount > 0 && course.IsPublished,
	})
}
