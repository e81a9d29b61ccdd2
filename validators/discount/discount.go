package discountValidator

import (
	"strconv"
	"strings"
	"time"

	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateDiscountRequest is the payload for minting a discount token
type CreateDiscountRequest struct {
	DiscountPercentage int       `json:"discount_percentage" validate:"required,gte=1,lte=100"`
	ExpiresAt          time.Time `json:"expires_at" validate:"required"`
	CourseIDs          []uint    `json:"course_ids" validate:"required,min=1,dive,gt=0"`
}

// CreateDiscount validates discount token creation request
func CreateDiscount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateDiscountRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "DiscountPercentage":
					errors["discount_percentage"] = "Discount percentage must be between 1 and 100!"
				case "ExpiresAt":
					errors["expires_at"] = "Expiry time is required!"
				case "CourseIDs":
					errors["course_ids"] = "At least one valid course ID is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		if !reqData.ExpiresAt.After(time.Now()) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"expires_at": "Expiry time must be in the future!",
			})
		}

		c.Locals("validatedDiscount", reqData)
		return c.Next()
	}
}

// DiscountID validates requests that only carry a token id
func DiscountID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenIDStr := strings.TrimSpace(c.Params("id"))
		if tokenIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Token ID is required!", nil)
		}

		tokenID, err := strconv.Atoi(tokenIDStr)
		if err != nil || tokenID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Token ID!", nil)
		}

		c.Locals("tokenID", tokenID)
		return c.Next()
	}
}

// DiscountCourse validates attach/detach requests carrying token and course ids
func DiscountCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenIDStr := strings.TrimSpace(c.Params("id"))
		courseIDStr := strings.TrimSpace(c.Params("course_id"))

		if tokenIDStr == "" || courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Token ID and Course ID are required!", nil)
		}

		tokenID, err := strconv.Atoi(tokenIDStr)
		if err != nil || tokenID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Token ID!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("tokenID", tokenID)
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// TokenCode validates requests carrying a token code
func TokenCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := strings.TrimSpace(c.Params("token"))
		if code == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Token is required!", nil)
		}

		c.Locals("tokenCode", code)
		return c.Next()
	}
}
