// file: internals/features/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationctrl "izone_backend/internals/features/notifications/controller"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	handler := notificationctrl.NewNotificationController(db)

	grp := api.Group("/notifications")
	{
		grp.Get("/", handler.ListNotifications)
		grp.Post("/", handler.CreateNotification)
		grp.Post("/read-all", handler.MarkAllRead)
		grp.Post("/:id/read", handler.MarkRead)
	}
}
