// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentctrl "izone_backend/internals/features/finance/payments/controller"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	handler := paymentctrl.NewPaymentController(db)

	grp := api.Group("/payments")
	{
		grp.Get("/", handler.ListPayments)
		grp.Post("/", handler.CreatePayment)
		grp.Get("/:id", handler.GetPayment)
		grp.Put("/:id", handler.UpdatePayment)
	}
}

// PaymentWebhookRoutes registers the midtrans callback. Mounted outside the
// auth middleware because the gateway cannot send our bearer token.
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB) {
	handler := paymentctrl.NewPaymentController(db)
	api.Post("/payments/notification", handler.HandleNotification)
}
