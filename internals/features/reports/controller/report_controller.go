// file: internals/features/reports/controller/report_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "izone_backend/internals/features/reports/dto"
	helper "izone_backend/internals/helpers"
)

// ReportController serves the back-office dashboards. These are read-only
// aggregations, so they go straight to SQL instead of walking models.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// RevenueByMonth sums paid payments per month of the paid timestamp.
func (ctl *ReportController) RevenueByMonth(c *fiber.Ctx) error {
	var rows []dto.MonthlyRevenueRow
	err := ctl.DB.WithContext(c.UserContext()).Raw(`
		SELECT to_char(payment_paid_at, 'YYYY-MM') AS month,
		       COALESCE(SUM(payment_amount), 0)    AS revenue,
		       COUNT(*)                            AS count
		FROM payments
		WHERE payment_status = 'paid'
		  AND payment_paid_at IS NOT NULL
		  AND payment_deleted_at IS NULL
		GROUP BY 1
		ORDER BY 1 DESC
		LIMIT 24
	`).Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build revenue report")
	}
	return helper.Success(c, "OK", fiber.Map{"revenue_by_month": rows})
}

// OutstandingPayments lists pending payments with the student and class they
// belong to, oldest first.
func (ctl *ReportController) OutstandingPayments(c *fiber.Ctx) error {
	var rows []dto.OutstandingPaymentRow
	err := ctl.DB.WithContext(c.UserContext()).Raw(`
		SELECT p.payment_id,
		       p.payment_enrollment_id,
		       s.student_name,
		       cl.class_name,
		       p.payment_amount,
		       p.payment_status,
		       to_char(p.payment_created_at, 'YYYY-MM-DD') AS payment_created_at
		FROM payments p
		JOIN class_enrollments e ON e.enrollment_id = p.payment_enrollment_id
		JOIN students s    ON s.student_id = e.enrollment_student_id
		JOIN classes cl    ON cl.class_id = e.enrollment_class_id
		WHERE p.payment_status = 'pending'
		  AND p.payment_deleted_at IS NULL
		ORDER BY p.payment_created_at ASC
	`).Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build outstanding report")
	}
	return helper.Success(c, "OK", fiber.Map{"outstanding_payments": rows})
}

// ClassFillRate compares active enrollments against class capacity.
func (ctl *ReportController) ClassFillRate(c *fiber.Ctx) error {
	var rows []dto.ClassFillRateRow
	err := ctl.DB.WithContext(c.UserContext()).Raw(`
		SELECT cl.class_id,
		       cl.class_name,
		       cl.class_max_capacity AS max_capacity,
		       COUNT(e.enrollment_id) FILTER (
		           WHERE e.enrollment_status <> 'cancelled'
		             AND e.enrollment_deleted_at IS NULL
		       ) AS enrolled,
		       CASE WHEN cl.class_max_capacity > 0 THEN
		           ROUND(COUNT(e.enrollment_id) FILTER (
		               WHERE e.enrollment_status <> 'cancelled'
		                 AND e.enrollment_deleted_at IS NULL
		           )::numeric / cl.class_max_capacity, 2)
		       ELSE 0 END AS fill_rate
		FROM classes cl
		LEFT JOIN class_enrollments e ON e.enrollment_class_id = cl.class_id
		WHERE cl.class_deleted_at IS NULL
		GROUP BY cl.class_id, cl.class_name, cl.class_max_capacity
		ORDER BY fill_rate DESC
	`).Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build fill rate report")
	}
	return helper.Success(c, "OK", fiber.Map{"class_fill_rate": rows})
}

// CostVsRevenue joins the monthly revenue and cost series into one net view.
func (ctl *ReportController) CostVsRevenue(c *fiber.Ctx) error {
	var rows []dto.CostRevenueRow
	err := ctl.DB.WithContext(c.UserContext()).Raw(`
		WITH revenue AS (
		    SELECT to_char(payment_paid_at, 'YYYY-MM') AS month,
		           SUM(payment_amount) AS revenue
		    FROM payments
		    WHERE payment_status = 'paid'
		      AND payment_paid_at IS NOT NULL
		      AND payment_deleted_at IS NULL
		    GROUP BY 1
		),
		expense AS (
		    SELECT to_char(cost_date, 'YYYY-MM') AS month,
		           SUM(cost_amount) AS cost
		    FROM costs
		    WHERE cost_deleted_at IS NULL
		    GROUP BY 1
		)
		SELECT COALESCE(r.month, x.month)            AS month,
		       COALESCE(r.revenue, 0)                AS revenue,
		       COALESCE(x.cost, 0)                   AS cost,
		       COALESCE(r.revenue, 0) - COALESCE(x.cost, 0) AS net
		FROM revenue r
		FULL OUTER JOIN expense x ON x.month = r.month
		ORDER BY 1 DESC
		LIMIT 24
	`).Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build cost vs revenue report")
	}
	return helper.Success(c, "OK", fiber.Map{"cost_vs_revenue": rows})
}
