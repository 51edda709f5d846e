// file: internals/features/academics/courses/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coursectrl "izone_backend/internals/features/academics/courses/controller"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	handler := coursectrl.NewCourseController(db)

	grp := api.Group("/courses")
	{
		grp.Get("/", handler.ListCourses)
		grp.Post("/", handler.CreateCourse)
		grp.Get("/:id", handler.GetCourse)
		grp.Put("/:id", handler.UpdateCourse)
		grp.Delete("/:id", handler.DeleteCourse)
	}
}
