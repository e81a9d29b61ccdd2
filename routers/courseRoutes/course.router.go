package courseRoutes

import (
	courseController "github.com/SacredMindInfotech/SacredMind-sub001/controllers/course"
	"github.com/SacredMindInfotech/SacredMind-sub001/middleware"
	courseValidator "github.com/SacredMindInfotech/SacredMind-sub001/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", courseController.GetCourses)
	courseGroup.Get("/:id", courseValidator.CourseID(), courseController.GetCourseDetails)
	courseGroup.Get("/:id/modules", courseValidator.CourseID(), courseController.GetCourseModules)
	courseGroup.Get("/:id/content", courseValidator.CourseID(), courseController.GetCourseContent)

	requireAdmin := middleware.RequireRole("ADMIN")

	adminCourseGroup := app.Group("/admin/course", middleware.JWTMiddleware, requireAdmin)

	adminCourseGroup.Get("/list", courseController.AdminGetAllCourses)
	adminCourseGroup.Post("/create", courseValidator.CreateCourseAdmin(), courseController.AdminCreateCourse)
	adminCourseGroup.Get("/:id", courseValidator.CourseID(), courseController.AdminGetCourseDetails)
	adminCourseGroup.Put("/:id", courseValidator.UpdateCourseAdmin(), courseController.AdminUpdateCourse)
	adminCourseGroup.Delete("/:id", courseValidator.CourseID(), courseController.AdminDeleteCourse)
	adminCourseGroup.Post("/:id/publish", courseValidator.PublishCourse(), courseController.AdminPublishCourse)
	adminCourseGroup.Get("/:id/modules", courseValidator.CourseID(), courseController.AdminListModules)
	adminCourseGroup.Post("/:id/module", courseValidator.CreateModule(), courseController.AdminCreateModule)

	adminModuleGroup := app.Group("/admin/module", middleware.JWTMiddleware, requireAdmin)

	adminModuleGroup.Put("/:module_id", courseValidator.UpdateModule(), courseController.AdminUpdateModule)
	adminModuleGroup.Delete("/:module_id", courseValidator.ModuleID(), courseController.AdminDeleteModule)
	adminModuleGroup.Get("/:module_id/topics", courseValidator.ModuleID(), courseController.AdminListTopics)
	adminModuleGroup.Post("/:module_id/topic", courseValidator.CreateTopic(), courseController.AdminCreateTopic)
	adminModuleGroup.Delete("/:module_id/topic/:topic_id", courseValidator.DeleteTopic(), courseController.AdminDeleteTopic)

	adminTopicGroup := app.Group("/admin/topic", middleware.JWTMiddleware, requireAdmin)

	adminTopicGroup.Put("/:topic_id", courseValidator.UpdateTopic(), courseController.AdminUpdateTopic)
	adminTopicGroup.Post("/:topic_id/content", courseValidator.CreateContentAdmin(), courseController.AdminCreateContent)

	adminContentGroup := app.Group("/admin/content", middleware.JWTMiddleware, requireAdmin)

	adminContentGroup.Put("/:content_id", courseValidator.UpdateContentAdmin(), courseController.AdminUpdateContent)
	adminContentGroup.Delete("/:content_id", courseValidator.DeleteContentAdmin(), courseController.AdminDeleteContent)
}
