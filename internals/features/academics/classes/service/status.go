// file: internals/features/academics/classes/service/status.go
package service

import (
	"context"
	"log"
	"time"

	sessionModel "izone_backend/internals/features/academics/sessions/model"
)

/* =========================
   Status sweep
========================= */

// ComputeSessionStatus derives the status purely from the clock vs the
// session window. Cancelled is sticky and never auto-overwritten. Running it
// twice at the same instant always yields the same answer.
func ComputeSessionStatus(s *sessionModel.SessionModel, now time.Time) string {
	if s.SessionStatus == sessionModel.SessionStatusCancelled {
		return sessionModel.SessionStatusCancelled
	}

	start, errS := parseClock(s.SessionStartTime)
	end, errE := parseClock(s.SessionEndTime)
	if errS != nil || errE != nil {
		return s.SessionStatus
	}

	windowStart := start.At(s.SessionDate)
	windowEnd := end.At(s.SessionDate)

	switch {
	case now.Before(windowStart):
		return sessionModel.SessionStatusScheduled
	case now.Before(windowEnd):
		return sessionModel.SessionStatusOngoing
	default:
		return sessionModel.SessionStatusCompleted
	}
}

// RefreshSessionStatuses sweeps every non-cancelled session and persists a
// new status where the window says so. Runs on a timer and on demand before
// read-heavy views.
func (e *Engine) RefreshSessionStatuses(ctx context.Context) error {
	now := e.Clock.Now()

	var rows []sessionModel.SessionModel
	if err := e.DB.WithContext(ctx).
		Where("session_status <> ?", sessionModel.SessionStatusCancelled).
		Find(&rows).Error; err != nil {
		return err
	}

	changed := 0
	for i := range rows {
		next := ComputeSessionStatus(&rows[i], now)
		if next == rows[i].SessionStatus {
			continue
		}
		if err := e.DB.WithContext(ctx).Model(&sessionModel.SessionModel{}).
			Where("session_id = ?", rows[i].SessionID).
			Update("session_status", next).Error; err != nil {
			return err
		}
		changed++
	}
	if changed > 0 {
		log.Printf("[SESSION-SWEEP] %d session status updated", changed)
	}
	return nil
}
