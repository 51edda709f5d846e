// file: internals/features/academics/classes/controller/class_sessions_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	dto "izone_backend/internals/features/academics/classes/dto"
	helper "izone_backend/internals/helpers"
)

/* ================= Session engine endpoints ================= */

// RecreateSessions rebuilds the future session set after class edits.
// POST /classes/:id/sessions/recreate
func (ctl *ClassController) RecreateSessions(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class id")
	}

	sessions, err := ctl.Engine.RecreateSessionsForClass(c.UserContext(), id)
	if err != nil {
		return writeEngineError(c, err)
	}
	return helper.Success(c, "Sessions recreated", sessions)
}

// UpdateFutureSessions patches teacher/room on not-yet-started sessions only.
// PATCH /classes/:id/sessions/future
func (ctl *ClassController) UpdateFutureSessions(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var req dto.UpdateFutureSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.NewTeacherID == nil && req.NewLocationID == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctl.Engine.UpdateFutureSessionsInfo(c.UserContext(), id, req.NewTeacherID, req.NewLocationID); err != nil {
		return writeEngineError(c, err)
	}
	return helper.Success(c, "Future sessions updated", nil)
}

// RefreshStatuses runs the on-demand status sweep.
// POST /sessions/refresh-statuses
func (ctl *ClassController) RefreshStatuses(c *fiber.Ctx) error {
	if err := ctl.Engine.RefreshSessionStatuses(c.UserContext()); err != nil {
		return writeEngineError(c, err)
	}
	return helper.Success(c, "Session statuses refreshed", nil)
}
