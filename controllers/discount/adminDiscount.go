package controllers

import (
	"errors"

	"github.com/SacredMindInfotech/SacredMind-sub001/database"
	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"
	"github.com/SacredMindInfotech/SacredMind-sub001/models"
	"github.com/SacredMindInfotech/SacredMind-sub001/services/pricing"
	"github.com/SacredMindInfotech/SacredMind-sub001/utils"
	discountValidator "github.com/SacredMindInfotech/SacredMind-sub001/validators/discount"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateDiscount mints a discount token for a set of courses. The code
// is generated server-side and mailed to the admin inbox for the records.
func AdminCreateDiscount(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDiscount").(*discountValidator.CreateDiscountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	code := utils.GenerateDiscountCode(10)

	token, err := pricing.CreateToken(database.Database.Db, code, reqData.DiscountPercentage, reqData.ExpiresAt, reqData.CourseIDs)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "One of the courses was not found!", nil)
		case errors.Is(err, pricing.ErrTokenAttached):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A course already has an active discount token!", nil)
		case errors.Is(err, pricing.ErrBadPercentage):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Discount percentage must be between 0 and 100!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create discount token!", nil)
	}

	go utils.SendDiscountTokenEmail(token.Token, token.DiscountPercentage, token.ExpiresAt)

	for _, courseID := range reqData.CourseIDs {
		utils.NotifyCatalogChanged("course", courseID)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Discount token created successfully!", token)
}

// AdminListDiscounts lists every token with its attached course ids
func AdminListDiscounts(c *fiber.Ctx) error {
	var tokens []models.DiscountToken
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&tokens).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch discount tokens!", nil)
	}

	type tokenView struct {
		models.DiscountToken
		CourseIDs []uint `json:"course_ids"`
	}
	views := make([]tokenView, 0, len(tokens))
	for _, token := range tokens {
		var links []models.DiscountTokenCourse
		if err := database.Database.Db.Where("discount_token_id = ? AND is_deleted = ?", token.ID, false).Find(&links).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch discount tokens!", nil)
		}
		courseIDs := make([]uint, 0, len(links))
		for _, link := range links {
			courseIDs = append(courseIDs, link.CourseID)
		}
		views = append(views, tokenView{DiscountToken: token, CourseIDs: courseIDs})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discount tokens fetched successfully!", fiber.Map{
		"tokens": views,
	})
}

// AdminDeactivateDiscount turns a token off ahead of its expiry
func AdminDeactivateDiscount(c *fiber.Ctx) error {
	tokenID := c.Locals("tokenID").(int)

	if err := pricing.DeactivateToken(database.Database.Db, uint(tokenID)); err != nil {
		if errors.Is(err, pricing.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Discount token not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deactivate discount token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discount token deactivated successfully!", nil)
}

// AdminAttachDiscountCourse makes one more course eligible for a token
func AdminAttachDiscountCourse(c *fiber.Ctx) error {
	tokenID := c.Locals("tokenID").(int)
	courseID := c.Locals("courseID").(int)

	if err := pricing.AttachCourse(database.Database.Db, uint(tokenID), uint(courseID)); err != nil {
		switch {
		case errors.Is(err, pricing.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Discount token or course not found!", nil)
		case errors.Is(err, pricing.ErrTokenAttached):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course already has an active discount token!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to attach course!", nil)
	}

	utils.NotifyCatalogChanged("course", uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course attached to discount token successfully!", nil)
}

// AdminDetachDiscountCourse removes a course from a token's eligible set
func AdminDetachDiscountCourse(c *fiber.Ctx) error {
	tokenID := c.Locals("tokenID").(int)
	courseID := c.Locals("courseID").(int)

	if err := pricing.DetachCourse(database.Database.Db, uint(tokenID), uint(courseID)); err != nil {
		if errors.Is(err, pricing.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course is not attached to this discount token!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to detach course!", nil)
	}

	utils.NotifyCatalogChanged("course", uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course detached from discount token successfully!", nil)
}
