// file: internals/features/finance/costs/route/cost_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	costctrl "izone_backend/internals/features/finance/costs/controller"
)

func CostRoutes(api fiber.Router, db *gorm.DB) {
	handler := costctrl.NewCostController(db)

	grp := api.Group("/costs")
	{
		grp.Get("/", handler.ListCosts)
		grp.Post("/", handler.CreateCost)
		grp.Put("/:id", handler.UpdateCost)
		grp.Delete("/:id", handler.DeleteCost)
	}
}
