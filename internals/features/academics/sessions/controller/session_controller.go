// file: internals/features/academics/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classService "izone_backend/internals/features/academics/classes/service"
	dto "izone_backend/internals/features/academics/sessions/dto"
	sessionModel "izone_backend/internals/features/academics/sessions/model"
	helper "izone_backend/internals/helpers"
)

type SessionController struct {
	DB     *gorm.DB
	Engine *classService.Engine
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, Engine: classService.NewEngine(db)}
}

var validate = validator.New()

/* ================= READ ================= */

func (ctl *SessionController) ListSessions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&sessionModel.SessionModel{})
	if classID := c.Query("class_id"); classID != "" {
		q = q.Where("session_class_id = ?", classID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("session_status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		q = q.Where("session_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("session_date <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count sessions")
	}

	var rows []sessionModel.SessionModel
	if err := q.Order("session_date ASC, session_start_time ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list sessions")
	}

	return helper.Success(c, "OK", fiber.Map{
		"sessions":   rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (ctl *SessionController) GetSession(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var row sessionModel.SessionModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load session")
	}
	return helper.Success(c, "OK", row)
}

/* ================= MAKEUP ================= */

// CreateMakeupSession bypasses the generator for a one-off session.
func (ctl *SessionController) CreateMakeupSession(c *fiber.Ctx) error {
	var req dto.CreateMakeupSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	day, err := time.Parse("2006-01-02", req.SessionDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "session_date must be YYYY-MM-DD")
	}
	start, end, err := classService.ParseTimeRange(req.SessionTimeSlot)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	row, err := ctl.Engine.CreateSingleSession(c.UserContext(), req.SessionClassID, day, start, end)
	if err != nil {
		if errors.Is(err, classService.ErrClassNotFound) {
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	if req.SessionNote != nil {
		_ = ctl.DB.WithContext(c.UserContext()).Model(row).Update("session_note", *req.SessionNote).Error
		row.SessionNote = req.SessionNote
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Makeup session created", row)
}

/* ================= PATCH ================= */

// UpdateSession patches one session: substitute teacher, room override,
// note, or cancellation. Sessions already held are immutable.
func (ctl *SessionController) UpdateSession(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var row sessionModel.SessionModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load session")
	}

	if classService.IsPastSession(&row, ctl.Engine.Clock.Now()) {
		return helper.Error(c, fiber.StatusBadRequest, "Session already held; history is immutable")
	}

	updates := map[string]interface{}{}
	if req.SessionTeacherID != nil {
		updates["session_teacher_id"] = *req.SessionTeacherID
	}
	if req.SessionLocationID != nil {
		updates["session_location_id"] = *req.SessionLocationID
	}
	if req.SessionNote != nil {
		updates["session_note"] = *req.SessionNote
	}
	if req.SessionCancelled != nil && *req.SessionCancelled {
		updates["session_status"] = sessionModel.SessionStatusCancelled
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&row).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update session")
	}
	return helper.Success(c, "Session updated", row)
}
