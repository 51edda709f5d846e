// file: internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentctrl "izone_backend/internals/features/academics/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	handler := studentctrl.NewStudentController(db)

	grp := api.Group("/students")
	{
		grp.Get("/", handler.ListStudents)
		grp.Post("/", handler.CreateStudent)
		grp.Get("/:id", handler.GetStudent)
		grp.Put("/:id", handler.UpdateStudent)
		grp.Delete("/:id", handler.DeleteStudent)
	}
}
