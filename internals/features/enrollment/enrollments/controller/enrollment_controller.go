// file: internals/features/enrollment/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "izone_backend/internals/features/academics/classes/model"
	dto "izone_backend/internals/features/enrollment/enrollments/dto"
	enrollmentModel "izone_backend/internals/features/enrollment/enrollments/model"
	helper "izone_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

var validate = validator.New()

// CreateEnrollment reserves a seat. The capacity check and the insert run in
// one transaction so two concurrent reservations can't both take the last
// seat.
func (ctl *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var class classModel.ClassModel
		if err := tx.First(&class, "class_id = ?", row.EnrollmentClassID).Error; err != nil {
			return err
		}

		var taken int64
		if err := tx.Model(&enrollmentModel.EnrollmentModel{}).
			Where("enrollment_class_id = ? AND enrollment_status <> ?",
				class.ClassID, enrollmentModel.EnrollmentStatusCancelled).
			Count(&taken).Error; err != nil {
			return err
		}
		if int(taken) >= class.ClassMaxCapacity {
			return errClassFull
		}

		return tx.Create(row).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Class not found")
		case errors.Is(err, errClassFull):
			return helper.Error(c, fiber.StatusConflict, "Class is full")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create enrollment")
		}
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment created", row)
}

var errClassFull = errors.New("class full")

func (ctl *EnrollmentController) ListEnrollments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&enrollmentModel.EnrollmentModel{})
	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("enrollment_class_id = ?", classID)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("enrollment_student_id = ?", studentID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("enrollment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	var rows []enrollmentModel.EnrollmentModel
	if err := q.Order("enrollment_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list enrollments")
	}

	return helper.Success(c, "OK", fiber.Map{
		"enrollments": rows,
		"pagination":  helper.BuildPagination(paging, total, len(rows)),
	})
}

func (ctl *EnrollmentController) UpdateEnrollment(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row enrollmentModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load enrollment")
	}

	if req.EnrollmentStatus != nil {
		row.EnrollmentStatus = *req.EnrollmentStatus
	}
	if req.EnrollmentNote != nil {
		row.EnrollmentNote = req.EnrollmentNote
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update enrollment")
	}
	return helper.Success(c, "Enrollment updated", row)
}

func (ctl *EnrollmentController) DeleteEnrollment(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&enrollmentModel.EnrollmentModel{}, "enrollment_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete enrollment")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.Success(c, "Enrollment deleted", nil)
}
