// file: internals/features/academics/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classctrl "izone_backend/internals/features/academics/classes/controller"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	handler := classctrl.NewClassController(db)

	grp := api.Group("/classes")
	{
		grp.Get("/", handler.ListClasses)
		grp.Post("/", handler.CreateClass)
		grp.Get("/schedule-preview", handler.PreviewSchedule)
		grp.Get("/:id", handler.GetClass)
		grp.Put("/:id", handler.UpdateClass)
		grp.Delete("/:id", handler.DeleteClass)

		grp.Post("/:id/sessions/recreate", handler.RecreateSessions)
		grp.Patch("/:id/sessions/future", handler.UpdateFutureSessions)
	}

	api.Post("/sessions/refresh-statuses", handler.RefreshStatuses)
}
