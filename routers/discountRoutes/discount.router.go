package discountRoutes

import (
	discountController "github.com/SacredMindInfotech/SacredMind-sub001/controllers/discount"
	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"
	courseValidator "github.com/SacredMindInfotech/SacredMind-sub001/validators/course"
	discountValidator "github.com/SacredMindInfotech/SacredMind-sub001/validators/discount"

	"github.com/gofiber/fiber/v2"
)

func SetupDiscountRoutes(app *fiber.App) {
	app.Get("/course/:id/discount-token", courseValidator.CourseID(), discountController.GetCourseDiscountToken)
	app.Get("/course/:id/discount-amount", courseValidator.CourseID(), discountController.GetCourseDiscountAmount)
	app.Get("/discount-token/:token", discountValidator.TokenCode(), discountController.GetDiscountToken)

	adminGroup := app.Group("/admin/discount", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Get("/list", discountController.AdminListDiscounts)
	adminGroup.Post("/create", discountValidator.CreateDiscount(), discountController.AdminCreateDiscount)
	adminGroup.Put("/:id/deactivate", discountValidator.DiscountID(), discountController.AdminDeactivateDiscount)
	adminGroup.Post("/:id/course/:course_id", discountValidator.DiscountCourse(), discountController.AdminAttachDiscountCourse)
	adminGroup.Delete("/:id/course/:course_id", discountValidator.DiscountCourse(), discountController.AdminDetachDiscountCourse)
}
