// file: internals/route/routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "izone_backend/internals/features/academics/classes/route"
	courseRoute "izone_backend/internals/features/academics/courses/route"
	locationRoute "izone_backend/internals/features/academics/locations/route"
	sessionRoute "izone_backend/internals/features/academics/sessions/route"
	studentRoute "izone_backend/internals/features/academics/students/route"
	teacherRoute "izone_backend/internals/features/academics/teachers/route"
	dropoutRoute "izone_backend/internals/features/analytics/dropout/route"
	enrollmentRoute "izone_backend/internals/features/enrollment/enrollments/route"
	costRoute "izone_backend/internals/features/finance/costs/route"
	paymentRoute "izone_backend/internals/features/finance/payments/route"
	notificationRoute "izone_backend/internals/features/notifications/route"
	reportRoute "izone_backend/internals/features/reports/route"
	userRoute "izone_backend/internals/features/users/route"
	"izone_backend/internals/middlewares/auth"
)

// SetupRoutes mounts everything under /api. Login and the payment gateway
// webhook stay outside the JWT middleware; everything else requires a token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	public := app.Group("/api")
	userRoute.AuthRoutes(public, db)
	paymentRoute.PaymentWebhookRoutes(public, db)

	api := app.Group("/api", auth.AuthMiddleware())

	courseRoute.CourseRoutes(api, db)
	locationRoute.LocationRoutes(api, db)
	teacherRoute.TeacherRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	classRoute.ClassRoutes(api, db)
	sessionRoute.SessionRoutes(api, db)
	enrollmentRoute.EnrollmentRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db)
	costRoute.CostRoutes(api, db)
	notificationRoute.NotificationRoutes(api, db)
	reportRoute.ReportRoutes(api, db)
	dropoutRoute.DropoutRoutes(api, db)
	userRoute.UserRoutes(api, db)
}
