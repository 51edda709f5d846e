// file: internals/features/academics/sessions/route/session_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionctrl "izone_backend/internals/features/academics/sessions/controller"
)

func SessionRoutes(api fiber.Router, db *gorm.DB) {
	handler := sessionctrl.NewSessionController(db)

	grp := api.Group("/sessions")
	{
		grp.Get("/", handler.ListSessions)
		grp.Post("/makeup", handler.CreateMakeupSession)
		grp.Get("/:id", handler.GetSession)
		grp.Patch("/:id", handler.UpdateSession)
	}
}
