// file: internals/features/academics/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "izone_backend/internals/features/academics/classes/dto"
	classModel "izone_backend/internals/features/academics/classes/model"
	"izone_backend/internals/features/academics/classes/service"
	locationModel "izone_backend/internals/features/academics/locations/model"
	sessionModel "izone_backend/internals/features/academics/sessions/model"
	helper "izone_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClassController struct {
	DB     *gorm.DB
	Engine *service.Engine
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Engine: service.NewEngine(db)}
}

var validate = validator.New()

/* ================= Error mapping ================= */

// writeEngineError maps engine sentinels onto the response envelope.
func writeEngineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrClassNotFound),
		errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrLocationNotFound):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidFormat):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConstraint):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		return helper.Error(c, fiber.StatusConflict, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

/* ================= CREATE ================= */

// CreateClass inserts the class and materializes its sessions in one
// transaction: a generation failure rolls the class row back too, so no
// class ever exists without its session set.
func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	class, err := req.ToModel()
	if err != nil {
		return writeEngineError(c, err)
	}

	if err := ctl.checkCapacity(class); err != nil {
		return writeEngineError(c, err)
	}

	var sessions []sessionModel.SessionModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(class).Error; err != nil {
			return err
		}
		eng := &service.Engine{DB: tx, Clock: ctl.Engine.Clock}
		rows, err := eng.CreateSessionsForClass(c.UserContext(), class.ClassID)
		if err != nil {
			return err
		}
		sessions = rows
		return nil
	})
	if err != nil {
		return writeEngineError(c, err)
	}

	// reload for the derived end date
	_ = ctl.DB.WithContext(c.UserContext()).First(class, "class_id = ?", class.ClassID).Error

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Class created", fiber.Map{
		"class":    class,
		"sessions": sessions,
	})
}

/* ================= READ ================= */

func (ctl *ClassController) ListClasses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&classModel.ClassModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("class_status = ?", status)
	}
	if courseID := c.Query("course_id"); courseID != "" {
		q = q.Where("class_course_id = ?", courseID)
	}
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		q = q.Where("class_teacher_id = ?", teacherID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var rows []classModel.ClassModel
	if err := q.Order("class_start_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list classes")
	}

	return helper.Success(c, "OK", fiber.Map{
		"classes":    rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (ctl *ClassController) GetClass(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var class classModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load class")
	}
	return helper.Success(c, "OK", class)
}

/* ================= UPDATE ================= */

// UpdateClass patches the class row, then keeps sessions consistent:
// timetable edits regenerate the future set, staffing/venue edits repoint
// future sessions in place.
func (ctl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var class classModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load class")
	}

	scheduleChanged, teacherChanged, locationChanged, err := req.Apply(&class)
	if err != nil {
		return writeEngineError(c, err)
	}

	if err := ctl.checkCapacity(&class); err != nil {
		return writeEngineError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&class).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update class")
	}

	switch {
	case scheduleChanged:
		if _, err := ctl.Engine.RecreateSessionsForClass(c.UserContext(), class.ClassID); err != nil {
			return writeEngineError(c, err)
		}
	case teacherChanged || locationChanged:
		// Push only the fields that actually changed; future sessions may
		// carry a substitute teacher that an unrelated venue edit must not
		// wipe.
		var teacherID, locationID *uuid.UUID
		if teacherChanged {
			teacherID = &class.ClassTeacherID
		}
		if locationChanged {
			locationID = class.ClassLocationID
		}
		if err := ctl.Engine.UpdateFutureSessionsInfo(c.UserContext(), class.ClassID, teacherID, locationID); err != nil {
			return writeEngineError(c, err)
		}
	}

	_ = ctl.DB.WithContext(c.UserContext()).First(&class, "class_id = ?", class.ClassID).Error
	return helper.Success(c, "Class updated", class)
}

/* ================= DELETE ================= */

func (ctl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&classModel.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.Success(c, "Class deleted", nil)
}

/* ================= Schedule preview ================= */

// PreviewSchedule parses pattern + time slot (and optionally projects dates)
// so the dashboard can validate input before creating a class.
func (ctl *ClassController) PreviewSchedule(c *fiber.Ctx) error {
	pattern := c.Query("pattern")
	weekdays := service.ParseWeekdayPattern(pattern)
	if len(weekdays) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "pattern has no valid weekday codes")
	}

	start, end, err := service.ParseTimeRange(c.Query("time_slot"))
	if err != nil {
		return writeEngineError(c, err)
	}

	resp := dto.SchedulePreviewResponse{
		Weekdays:  service.WeekdayCodes(weekdays),
		StartTime: start.String(),
		EndTime:   end.String(),
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		startDate, perr := time.Parse("2006-01-02", startDateStr)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
		}
		count, _ := strconv.Atoi(c.Query("count", "0"))
		if count <= 0 {
			return helper.Error(c, fiber.StatusBadRequest, "count must be positive")
		}
		dates := service.GenerateSessionDates(startDate, weekdays, count)
		for _, d := range dates {
			resp.SessionDates = append(resp.SessionDates, d.Format("2006-01-02"))
		}
		if len(dates) > 0 {
			endDate := dates[len(dates)-1].Format("2006-01-02")
			resp.EndDate = &endDate
		}
	}

	return helper.Success(c, "OK", resp)
}

/* ================= Capacity rule ================= */

// checkCapacity enforces class capacity <= location capacity when a room is
// assigned.
func (ctl *ClassController) checkCapacity(class *classModel.ClassModel) error {
	if class.ClassLocationID == nil {
		return nil
	}
	var loc locationModel.LocationModel
	if err := ctl.DB.First(&loc, "location_id = ?", *class.ClassLocationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrLocationNotFound
		}
		return err
	}
	if class.ClassMaxCapacity > loc.LocationCapacity {
		return service.ErrConstraint
	}
	return nil
}
