package categoryRoutes

import (
	categoryController "github.com/SacredMindInfotech/SacredMind-sub001/controllers/category"
	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"
	categoryValidator "github.com/SacredMindInfotech/SacredMind-sub001/validators/category"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/category")

	categoryGroup.Get("/list", categoryValidator.ListCategories(), categoryController.GetCategories)
	categoryGroup.Get("/:name", categoryController.GetCategoryByName)

	adminGroup := app.Group("/admin/category")

	adminGroup.Get("/list", middleware.JWTMiddleware, categoryController.AdminListCategories)
	adminGroup.Post("/create", categoryValidator.CreateCategory(), middleware.JWTMiddleware, categoryController.AdminCreateCategory)
	adminGroup.Put("/:id", categoryValidator.UpdateCategory(), middleware.JWTMiddleware, categoryController.AdminUpdateCategory)
	adminGroup.Delete("/:id", categoryValidator.CategoryID(), middleware.JWTMiddleware, categoryController.AdminDeleteCategory)
}
