// file: internals/features/academics/classes/service/recreate.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "izone_backend/internals/features/academics/classes/model"
	sessionModel "izone_backend/internals/features/academics/sessions/model"
)

/* =========================
   Past / Future split
========================= */

// IsPastSession reports whether the session has already started relative to
// now. Past sessions are frozen: regeneration and bulk info updates never
// touch them.
func IsPastSession(s *sessionModel.SessionModel, now time.Time) bool {
	start, err := parseClock(s.SessionStartTime)
	if err != nil {
		// Unparsable start time: treat the whole day boundary as the cutoff.
		return !DateOf(s.SessionDate).After(DateOf(now))
	}
	return !start.At(s.SessionDate).After(now)
}

// futureBoundary is the cutoff both the SQL window and the in-memory
// predicate compare against: the current date plus the clock as zero-padded
// "HH:MM".
func futureBoundary(now time.Time) (time.Time, string) {
	return DateOf(now), TimeOfDay{Hour: now.Hour(), Minute: now.Minute()}.String()
}

// futureScope narrows a session query to not-yet-started sessions of one
// class. The lexical compare on start_time works because it is always
// zero-padded "HH:MM".
func futureScope(tx *gorm.DB, classID uuid.UUID, now time.Time) *gorm.DB {
	today, nowClock := futureBoundary(now)
	return tx.Where("session_class_id = ?", classID).
		Where("session_date > ? OR (session_date = ? AND session_start_time > ?)", today, today, nowClock)
}

// isFutureSession applies the futureScope cutoff to a loaded row. For any
// session with a well-formed start time it is the exact complement of
// IsPastSession.
func isFutureSession(s *sessionModel.SessionModel, now time.Time) bool {
	today, nowClock := futureBoundary(now)
	d := DateOf(s.SessionDate)
	return d.After(today) || (d.Equal(today) && s.SessionStartTime > nowClock)
}

/* =========================
   Regeneration
========================= */

// RecreateSessionsForClass drops every not-yet-started session of the class
// and regenerates the future set from the class's current timetable, leaving
// history untouched. Runs in one transaction so a failure keeps the previous
// future set intact. Returns the full session list, past ∪ new future, in
// date order.
func (e *Engine) RecreateSessionsForClass(ctx context.Context, classID uuid.UUID) ([]sessionModel.SessionModel, error) {
	now := e.Clock.Now()
	var result []sessionModel.SessionModel

	err := e.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		class, course, err := loadClassWithCourse(tx, classID)
		if err != nil {
			return err
		}

		if err := futureScope(tx, class.ClassID, now).
			Delete(&sessionModel.SessionModel{}).Error; err != nil {
			return err
		}

		var pastCount int64
		if err := tx.Model(&sessionModel.SessionModel{}).
			Where("session_class_id = ?", class.ClassID).
			Count(&pastCount).Error; err != nil {
			return err
		}

		needed := course.CourseTotalSessions - int(pastCount)
		if needed > 0 {
			from := regenerationStart(class.ClassStartDate, now)
			plan, err := buildGenerationPlan(class, needed, from)
			if err != nil {
				return err
			}
			rows := plan.sessionRows(class)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		var all []sessionModel.SessionModel
		if err := tx.Where("session_class_id = ?", class.ClassID).
			Order("session_date ASC, session_start_time ASC").
			Find(&all).Error; err != nil {
			return err
		}
		result = all

		if len(all) > 0 {
			endDate := all[len(all)-1].SessionDate
			if err := tx.Model(&classModel.ClassModel{}).
				Where("class_id = ?", class.ClassID).
				Update("class_end_date", endDate).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// regenerationStart picks the first candidate day for new future sessions:
// the class start date, but never a day whose sessions would already count
// as past.
func regenerationStart(classStart, now time.Time) time.Time {
	today := DateOf(now)
	start := DateOf(classStart)
	if start.After(today) {
		return start
	}
	// Sessions generated for today would sort before the current clock time
	// for most time slots; starting tomorrow keeps the future set strictly
	// ahead of now.
	return today.AddDate(0, 0, 1)
}

/* =========================
   Targeted info patch
========================= */

// UpdateFutureSessionsInfo overwrites the teacher and/or room on every
// not-yet-started session of the class. Only the supplied fields change;
// past sessions keep whoever actually taught them.
func (e *Engine) UpdateFutureSessionsInfo(ctx context.Context, classID uuid.UUID, newTeacherID, newLocationID *uuid.UUID) error {
	updates := map[string]interface{}{}
	if newTeacherID != nil {
		updates["session_teacher_id"] = *newTeacherID
	}
	if newLocationID != nil {
		updates["session_location_id"] = *newLocationID
	}
	if len(updates) == 0 {
		return nil
	}

	var class classModel.ClassModel
	if err := e.DB.WithContext(ctx).First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}

	now := e.Clock.Now()
	return futureScope(e.DB.WithContext(ctx).Model(&sessionModel.SessionModel{}), classID, now).
		Updates(updates).Error
}
