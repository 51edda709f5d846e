// file: internals/features/enrollment/enrollments/route/enrollment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentctrl "izone_backend/internals/features/enrollment/enrollments/controller"
)

func EnrollmentRoutes(api fiber.Router, db *gorm.DB) {
	handler := enrollmentctrl.NewEnrollmentController(db)

	grp := api.Group("/enrollments")
	{
		grp.Get("/", handler.ListEnrollments)
		grp.Post("/", handler.CreateEnrollment)
		grp.Put("/:id", handler.UpdateEnrollment)
		grp.Delete("/:id", handler.DeleteEnrollment)
	}
}
