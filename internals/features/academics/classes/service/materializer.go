// file: internals/features/academics/classes/service/materializer.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "izone_backend/internals/features/academics/classes/model"
	courseModel "izone_backend/internals/features/academics/courses/model"
	sessionModel "izone_backend/internals/features/academics/sessions/model"
)

/* =========================
   Engine
========================= */

// Engine materializes a class's recurrence pattern into concrete session
// rows and keeps them consistent across later edits.
type Engine struct {
	DB    *gorm.DB
	Clock Clock
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{DB: db, Clock: realClock{}}
}

/* =========================
   Generation (class creation)
========================= */

// CreateSessionsForClass expands the class timetable into one session row
// per generated date, carrying the class's default teacher, room and time
// slot. Not idempotent on its own: callers invoke it exactly once, at class
// creation.
func (e *Engine) CreateSessionsForClass(ctx context.Context, classID uuid.UUID) ([]sessionModel.SessionModel, error) {
	var rows []sessionModel.SessionModel

	err := e.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		class, course, err := loadClassWithCourse(tx, classID)
		if err != nil {
			return err
		}

		plan, err := buildGenerationPlan(class, course.CourseTotalSessions, class.ClassStartDate)
		if err != nil {
			return err
		}

		rows = plan.sessionRows(class)
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		endDate := plan.dates[len(plan.dates)-1]
		return tx.Model(&classModel.ClassModel{}).
			Where("class_id = ?", class.ClassID).
			Update("class_end_date", endDate).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateSingleSession inserts one ad-hoc session (e.g. a makeup class)
// outside the generated pattern.
func (e *Engine) CreateSingleSession(ctx context.Context, classID uuid.UUID, date time.Time, start, end TimeOfDay) (*sessionModel.SessionModel, error) {
	var class classModel.ClassModel
	if err := e.DB.WithContext(ctx).First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	row := sessionModel.SessionModel{
		SessionClassID:    class.ClassID,
		SessionDate:       DateOf(date),
		SessionStartTime:  start.String(),
		SessionEndTime:    end.String(),
		SessionStatus:     sessionModel.SessionStatusScheduled,
		SessionTeacherID:  &class.ClassTeacherID,
		SessionLocationID: class.ClassLocationID,
	}
	if err := e.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

/* =========================
   Plan (pure part, shared with regeneration)
========================= */

type generationPlan struct {
	dates []time.Time
	start TimeOfDay
	end   TimeOfDay
}

// buildGenerationPlan validates the class timetable and produces the dates
// for `count` sessions beginning at `from`.
func buildGenerationPlan(class *classModel.ClassModel, count int, from time.Time) (*generationPlan, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: session count must be positive, got %d", ErrConstraint, count)
	}
	weekdays := WeekdaySetFromCodes(class.ClassScheduleDays)
	if len(weekdays) == 0 {
		return nil, fmt.Errorf("%w: class has no valid schedule days", ErrInvalidFormat)
	}
	start, end, err := ParseTimeRange(class.ClassTimeSlot)
	if err != nil {
		return nil, err
	}

	dates := GenerateSessionDates(from, weekdays, count)
	if len(dates) < count {
		return nil, fmt.Errorf("%w: could not place %d sessions from %s", ErrConstraint, count, DateOf(from).Format("2006-01-02"))
	}
	return &generationPlan{dates: dates, start: start, end: end}, nil
}

func (p *generationPlan) sessionRows(class *classModel.ClassModel) []sessionModel.SessionModel {
	rows := make([]sessionModel.SessionModel, 0, len(p.dates))
	for _, d := range p.dates {
		rows = append(rows, sessionModel.SessionModel{
			SessionClassID:    class.ClassID,
			SessionDate:       d,
			SessionStartTime:  p.start.String(),
			SessionEndTime:    p.end.String(),
			SessionStatus:     sessionModel.SessionStatusScheduled,
			SessionTeacherID:  &class.ClassTeacherID,
			SessionLocationID: class.ClassLocationID,
		})
	}
	return rows
}

/* =========================
   Shared loaders
========================= */

func loadClassWithCourse(tx *gorm.DB, classID uuid.UUID) (*classModel.ClassModel, *courseModel.CourseModel, error) {
	var class classModel.ClassModel
	if err := tx.First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrClassNotFound
		}
		return nil, nil, err
	}
	var course courseModel.CourseModel
	if err := tx.First(&course, "course_id = ?", class.ClassCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCourseNotFound
		}
		return nil, nil, err
	}
	return &class, &course, nil
}
