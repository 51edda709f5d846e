// file: internals/features/academics/locations/route/location_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	locationctrl "izone_backend/internals/features/academics/locations/controller"
)

func LocationRoutes(api fiber.Router, db *gorm.DB) {
	handler := locationctrl.NewLocationController(db)

	grp := api.Group("/locations")
	{
		grp.Get("/", handler.ListLocations)
		grp.Post("/", handler.CreateLocation)
		grp.Get("/:id", handler.GetLocation)
		grp.Put("/:id", handler.UpdateLocation)
		grp.Delete("/:id", handler.DeleteLocation)
	}
}
