// file: internals/features/academics/classes/dto/class_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	classModel "izone_backend/internals/features/academics/classes/model"
	"izone_backend/internals/features/academics/classes/service"
)

const dateLayout = "2006-01-02"

/* =========================
   CREATE
========================= */

type CreateClassRequest struct {
	ClassCourseID   uuid.UUID  `json:"class_course_id" validate:"required"`
	ClassTeacherID  uuid.UUID  `json:"class_teacher_id" validate:"required"`
	ClassLocationID *uuid.UUID `json:"class_location_id,omitempty"`

	ClassName string `json:"class_name" validate:"required,min=1,max=160"`

	ClassStartDate       string `json:"class_start_date" validate:"required"`       // "2006-01-02"
	ClassSchedulePattern string `json:"class_schedule_pattern" validate:"required"` // "2,4,6"
	ClassTimeSlot        string `json:"class_time_slot" validate:"required"`        // "19:45-21:15"

	ClassSessionRate   int64   `json:"class_session_rate" validate:"gte=0"`
	ClassDurationHours float64 `json:"class_duration_hours" validate:"gte=0"`
	ClassMaxCapacity   int     `json:"class_max_capacity" validate:"required,gt=0"`
}

// ToModel validates the timetable strings and builds the row. The weekday
// pattern must keep at least one valid code; start must be before end (the
// parser itself stays lenient about ordering, the DTO owns that check).
func (r *CreateClassRequest) ToModel() (*classModel.ClassModel, error) {
	startDate, err := time.Parse(dateLayout, r.ClassStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: class_start_date must be YYYY-MM-DD", service.ErrInvalidFormat)
	}

	weekdays := service.ParseWeekdayPattern(r.ClassSchedulePattern)
	if len(weekdays) == 0 {
		return nil, fmt.Errorf("%w: class_schedule_pattern has no valid weekday codes", service.ErrInvalidFormat)
	}

	start, end, err := service.ParseTimeRange(r.ClassTimeSlot)
	if err != nil {
		return nil, err
	}
	if start.Hour*60+start.Minute >= end.Hour*60+end.Minute {
		return nil, fmt.Errorf("%w: time slot start must be before end", service.ErrInvalidFormat)
	}

	return &classModel.ClassModel{
		ClassCourseID:     r.ClassCourseID,
		ClassTeacherID:    r.ClassTeacherID,
		ClassLocationID:   r.ClassLocationID,
		ClassName:         r.ClassName,
		ClassStartDate:    service.DateOf(startDate),
		ClassScheduleDays: pq.Int64Array(service.WeekdayCodes(weekdays)),
		ClassTimeSlot:     start.String() + "-" + end.String(),
		ClassSessionRate:  r.ClassSessionRate,
		ClassDurationHours: r.ClassDurationHours,
		ClassMaxCapacity:  r.ClassMaxCapacity,
		ClassStatus:       classModel.ClassStatusNotStarted,
	}, nil
}

/* =========================
   UPDATE (partial)
========================= */

type UpdateClassRequest struct {
	ClassTeacherID  *uuid.UUID `json:"class_teacher_id,omitempty"`
	ClassLocationID *uuid.UUID `json:"class_location_id,omitempty"`

	ClassName *string `json:"class_name,omitempty" validate:"omitempty,min=1,max=160"`

	ClassStartDate       *string `json:"class_start_date,omitempty"`
	ClassSchedulePattern *string `json:"class_schedule_pattern,omitempty"`
	ClassTimeSlot        *string `json:"class_time_slot,omitempty"`

	ClassSessionRate   *int64   `json:"class_session_rate,omitempty" validate:"omitempty,gte=0"`
	ClassDurationHours *float64 `json:"class_duration_hours,omitempty" validate:"omitempty,gte=0"`
	ClassMaxCapacity   *int     `json:"class_max_capacity,omitempty" validate:"omitempty,gt=0"`

	ClassStatus *string `json:"class_status,omitempty" validate:"omitempty,oneof=not_started in_progress finished cancelled"`
}

// Apply patches the model in place and reports which edit class the request
// falls into: timetable edits trigger full session regeneration, teacher or
// venue edits only repoint that field on future sessions. Teacher and
// location are reported separately so an unchanged field is never pushed
// down onto sessions that carry their own override.
func (r *UpdateClassRequest) Apply(m *classModel.ClassModel) (scheduleChanged, teacherChanged, locationChanged bool, err error) {
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
	if r.ClassSessionRate != nil {
		m.ClassSessionRate = *r.ClassSessionRate
	}
	if r.ClassDurationHours != nil {
		m.ClassDurationHours = *r.ClassDurationHours
	}
	if r.ClassMaxCapacity != nil {
		m.ClassMaxCapacity = *r.ClassMaxCapacity
	}
	if r.ClassStatus != nil {
		m.ClassStatus = *r.ClassStatus
	}

	if r.ClassTeacherID != nil && *r.ClassTeacherID != m.ClassTeacherID {
		m.ClassTeacherID = *r.ClassTeacherID
		teacherChanged = true
	}
	if r.ClassLocationID != nil {
		if m.ClassLocationID == nil || *m.ClassLocationID != *r.ClassLocationID {
			locationChanged = true
		}
		m.ClassLocationID = r.ClassLocationID
	}

	if r.ClassStartDate != nil {
		startDate, perr := time.Parse(dateLayout, *r.ClassStartDate)
		if perr != nil {
			return false, false, false, fmt.Errorf("%w: class_start_date must be YYYY-MM-DD", service.ErrInvalidFormat)
		}
		m.ClassStartDate = service.DateOf(startDate)
		scheduleChanged = true
	}
	if r.ClassSchedulePattern != nil {
		weekdays := service.ParseWeekdayPattern(*r.ClassSchedulePattern)
		if len(weekdays) == 0 {
			return false, false, false, fmt.Errorf("%w: class_schedule_pattern has no valid weekday codes", service.ErrInvalidFormat)
		}
		m.ClassScheduleDays = pq.Int64Array(service.WeekdayCodes(weekdays))
		scheduleChanged = true
	}
	if r.ClassTimeSlot != nil {
		start, end, perr := service.ParseTimeRange(*r.ClassTimeSlot)
		if perr != nil {
			return false, false, false, perr
		}
		if start.Hour*60+start.Minute >= end.Hour*60+end.Minute {
			return false, false, false, fmt.Errorf("%w: time slot start must be before end", service.ErrInvalidFormat)
		}
		m.ClassTimeSlot = start.String() + "-" + end.String()
		scheduleChanged = true
	}

	return scheduleChanged, teacherChanged, locationChanged, nil
}

/* =========================
   Future-session patch
========================= */

type UpdateFutureSessionsRequest struct {
	NewTeacherID  *uuid.UUID `json:"new_teacher_id,omitempty"`
	NewLocationID *uuid.UUID `json:"new_location_id,omitempty"`
}

/* =========================
   Schedule preview
========================= */

type SchedulePreviewResponse struct {
	Weekdays    []int64  `json:"weekdays"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	SessionDates []string `json:"session_dates,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
}
