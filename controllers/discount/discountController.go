package controllers

import (
	"errors"
	"time"

	"github.com/SacredMindInfotech/SacredMind-sub001/database"
	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"
	"github.com/SacredMindInfotech/SacredMind-sub001/models"
	"github.com/SacredMindInfotech/SacredMind-sub001/services/pricing"

	"github.com/gofiber/fiber/v2"
)

// GetCourseDiscountToken returns the token currently usable on a course, or
// null when the course has none. An expired or deactivated token reads as
// none; that is normal storefront behavior, not an error.
func GetCourseDiscountToken(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	token, err := pricing.TokenForCourse(database.Database.Db, course.ID, time.Now())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch discount token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discount token fetched successfully!", fiber.Map{
		"token": token,
	})
}

// GetDiscountToken resolves a token by its code so a client can re-validate
// one it is holding.
func GetDiscountToken(c *fiber.Ctx) error {
	code := c.Locals("tokenCode").(string)

	token, courseIDs, err := pricing.GetToken(database.Database.Db, code)
	if err != nil {
		if errors.Is(err, pricing.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Discount token not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch discount token!", nil)
	}

	valid := token.IsActive && token.ExpiresAt.After(time.Now())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discount token fetched successfully!", fiber.Map{
		"token":      token,
		"course_ids": courseIDs,
		"valid":      valid,
	})
}

// GetCourseDiscountAmount quotes a course's current price. Without a valid
// token the quote carries the full price and a zero discount.
func GetCourseDiscountAmount(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	quote, err := pricing.EffectivePrice(database.Database.Db, course.ID, course.Price, time.Now())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute discount!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discount computed successfully!", fiber.Map{
		"price":            course.Price,
		"discounted_price": quote.DiscountedPrice,
		"discount_amount":  quote.DiscountAmount,
	})
}
