package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/features/courses/controller"
)

// CoursePublicRoutes mounts the catalogue endpoints.
func CoursePublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)

	courses := app.Group("/api/courses")
	courses.Get("/", ctrl.List)
	courses.Get("/:slug", ctrl.Detail)
}

// CourseUserRoutes mounts the JWT-gated enrollment endpoints.
func CourseUserRoutes(r fiber.Router, db *gorm.DB) {
	courseCtrl := controller.NewCourseController(db)
	enrollCtrl := controller.NewEnrollmentController(db)

	r.Get("/bundles", courseCtrl.Bundles)
	r.Post("/courses/:slug/enroll", enrollCtrl.Enroll)
	r.Get("/enrollments", enrollCtrl.MyEnrollments)
}
