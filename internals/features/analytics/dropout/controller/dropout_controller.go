// file: internals/features/analytics/dropout/controller/dropout_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "izone_backend/internals/features/academics/students/model"
	dropoutService "izone_backend/internals/features/analytics/dropout/service"
	helper "izone_backend/internals/helpers"
)

type DropoutController struct {
	DB        *gorm.DB
	Predictor dropoutService.Predictor
}

func NewDropoutController(db *gorm.DB) *DropoutController {
	return &DropoutController{DB: db, Predictor: dropoutService.NewDefaultPredictor()}
}

// ScoreStudent derives risk features for one student and runs the predictor.
// Attendance is not tracked per student, so absence is proxied by the share
// of the student's enrollments that ended up cancelled.
func (ctl *DropoutController) ScoreStudent(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "student_id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student studentModel.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	features, err := ctl.deriveFeatures(c, id.String())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to derive features")
	}

	score := ctl.Predictor.Predict(*features)
	return helper.Success(c, "OK", fiber.Map{
		"student_id": student.StudentID,
		"features":   features,
		"score":      score,
		"risk":       dropoutService.RiskLabel(score),
	})
}

func (ctl *DropoutController) deriveFeatures(c *fiber.Ctx, studentID string) (*dropoutService.Features, error) {
	db := ctl.DB.WithContext(c.UserContext())

	var enrollment struct {
		Total     int64 `gorm:"column:total"`
		Cancelled int64 `gorm:"column:cancelled"`
	}
	err := db.Raw(`
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE enrollment_status = 'cancelled') AS cancelled
		FROM class_enrollments
		WHERE enrollment_student_id = ?
		  AND enrollment_deleted_at IS NULL
	`, studentID).Scan(&enrollment).Error
	if err != nil {
		return nil, err
	}

	var payment struct {
		Total   int64 `gorm:"column:total"`
		Late    int64 `gorm:"column:late"`
		Pending int64 `gorm:"column:pending"`
	}
	err = db.Raw(`
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE payment_status IN ('pending','failed','expired')) AS late,
		       COUNT(*) FILTER (WHERE payment_status = 'pending') AS pending
		FROM payments p
		JOIN class_enrollments e ON e.enrollment_id = p.payment_enrollment_id
		WHERE e.enrollment_student_id = ?
		  AND p.payment_deleted_at IS NULL
	`, studentID).Scan(&payment).Error
	if err != nil {
		return nil, err
	}

	// Last completed session in any class the student is still enrolled in.
	var lastSession struct {
		LastDate *time.Time `gorm:"column:last_date"`
	}
	err = db.Raw(`
		SELECT MAX(cs.session_date) AS last_date
		FROM class_sessions cs
		JOIN class_enrollments e ON e.enrollment_class_id = cs.session_class_id
		WHERE e.enrollment_student_id = ?
		  AND e.enrollment_status <> 'cancelled'
		  AND cs.session_status = 'completed'
		  AND cs.session_deleted_at IS NULL
	`, studentID).Scan(&lastSession).Error
	if err != nil {
		return nil, err
	}

	f := &dropoutService.Features{
		PendingPayments: int(payment.Pending),
	}
	if enrollment.Total > 0 {
		f.AbsenceRate = float64(enrollment.Cancelled) / float64(enrollment.Total)
	}
	if payment.Total > 0 {
		f.PaymentLateRate = float64(payment.Late) / float64(payment.Total)
	}
	if lastSession.LastDate != nil {
		weeks := int(time.Since(*lastSession.LastDate).Hours() / (24 * 7))
		if weeks > 0 {
			f.InactiveWeeks = weeks
		}
	}
	return f, nil
}
