// file: internals/features/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"izone_backend/internals/constants"
	userctrl "izone_backend/internals/features/users/controller"
	"izone_backend/internals/middlewares/auth"
)

// AuthRoutes is mounted outside the auth middleware.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	handler := userctrl.NewAuthController(db)
	api.Post("/auth/login", handler.Login)
}

// UserRoutes is admin-only account management.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	handler := userctrl.NewUserController(db)

	grp := api.Group("/users", auth.RequireRoles(constants.RoleAdmin))
	{
		grp.Get("/", handler.ListUsers)
		grp.Post("/", handler.CreateUser)
		grp.Get("/:id", handler.GetUser)
		grp.Put("/:id", handler.UpdateUser)
		grp.Delete("/:id", handler.DeleteUser)
	}
}
