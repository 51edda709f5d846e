// file: internals/features/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportctrl "izone_backend/internals/features/reports/controller"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	handler := reportctrl.NewReportController(db)

	grp := api.Group("/reports")
	{
		grp.Get("/revenue-by-month", handler.RevenueByMonth)
		grp.Get("/outstanding-payments", handler.OutstandingPayments)
		grp.Get("/class-fill-rate", handler.ClassFillRate)
		grp.Get("/cost-vs-revenue", handler.CostVsRevenue)
	}
}
