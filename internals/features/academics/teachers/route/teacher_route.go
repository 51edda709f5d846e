// file: internals/features/academics/teachers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherctrl "izone_backend/internals/features/academics/teachers/controller"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	handler := teacherctrl.NewTeacherController(db)

	grp := api.Group("/teachers")
	{
		grp.Get("/", handler.ListTeachers)
		grp.Post("/", handler.CreateTeacher)
		grp.Get("/:id", handler.GetTeacher)
		grp.Put("/:id", handler.UpdateTeacher)
		grp.Delete("/:id", handler.DeleteTeacher)
	}
}
