// file: internals/features/academics/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	ClassStatusNotStarted = "not_started"
	ClassStatusInProgress = "in_progress"
	ClassStatusFinished   = "finished"
	ClassStatusCancelled  = "cancelled"
)

// ClassModel maps the `classes` table: one scheduled offering of a course
// with its own teacher, room and timetable. Sessions are generated from
// ClassStartDate + ClassScheduleDays + the course's total session count.
type ClassModel struct {
	ClassID uuid.UUID `json:"class_id" gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// References
	ClassCourseID   uuid.UUID  `json:"class_course_id" gorm:"column:class_course_id;type:uuid;not null;index"`
	ClassTeacherID  uuid.UUID  `json:"class_teacher_id" gorm:"column:class_teacher_id;type:uuid;not null;index"`
	ClassLocationID *uuid.UUID `json:"class_location_id,omitempty" gorm:"column:class_location_id;type:uuid;index"`

	ClassName string `json:"class_name" gorm:"column:class_name;type:varchar(160);not null"`

	// Timetable. ClassScheduleDays holds weekday codes 2..8 (2=Mon .. 8=Sun),
	// ClassTimeSlot is the "HH:MM-HH:MM" range applied to every session.
	// ClassEndDate is derived from the last generated session.
	ClassStartDate    time.Time     `json:"class_start_date" gorm:"column:class_start_date;type:date;not null"`
	ClassEndDate      *time.Time    `json:"class_end_date,omitempty" gorm:"column:class_end_date;type:date"`
	ClassScheduleDays pq.Int64Array `json:"class_schedule_days" gorm:"column:class_schedule_days;type:bigint[];not null"`
	ClassTimeSlot     string        `json:"class_time_slot" gorm:"column:class_time_slot;type:varchar(16);not null"`

	ClassSessionRate   int64   `json:"class_session_rate" gorm:"column:class_session_rate;not null;default:0"`
	ClassDurationHours float64 `json:"class_duration_hours" gorm:"column:class_duration_hours;not null;default:0"`
	ClassMaxCapacity   int     `json:"class_max_capacity" gorm:"column:class_max_capacity;not null;default:0"`

	ClassStatus string `json:"class_status" gorm:"column:class_status;type:varchar(16);not null;default:'not_started'"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;type:timestamptz;not null;default:now()"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt      gorm.DeletedAt `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at;type:timestamptz;index"`
}

func (ClassModel) TableName() string {
	return "classes"
}
