// file: internals/features/analytics/dropout/route/dropout_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dropoutctrl "izone_backend/internals/features/analytics/dropout/controller"
)

func DropoutRoutes(api fiber.Router, db *gorm.DB) {
	handler := dropoutctrl.NewDropoutController(db)

	grp := api.Group("/dropout")
	{
		grp.Get("/:student_id", handler.ScoreStudent)
	}
}
