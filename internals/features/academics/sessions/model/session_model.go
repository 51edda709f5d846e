// file: internals/features/academics/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SessionStatusScheduled = "scheduled"
	SessionStatusOngoing   = "ongoing"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// SessionModel maps the `class_sessions` table: one concrete meeting of a
// class on a specific date. Rows are created by the session generator (or
// the makeup endpoint); sessions already held are immutable by business rule.
type SessionModel struct {
	SessionID      uuid.UUID `json:"session_id" gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionClassID uuid.UUID `json:"session_class_id" gorm:"column:session_class_id;type:uuid;not null;index"`

	SessionDate      time.Time `json:"session_date" gorm:"column:session_date;type:date;not null;index"`
	SessionStartTime string    `json:"session_start_time" gorm:"column:session_start_time;type:varchar(5);not null"` // "HH:MM"
	SessionEndTime   string    `json:"session_end_time" gorm:"column:session_end_time;type:varchar(5);not null"`

	SessionStatus string `json:"session_status" gorm:"column:session_status;type:varchar(16);not null;default:'scheduled'"`

	// Assigned at generation from the class defaults; future sessions may be
	// repointed when staffing or venue changes.
	SessionTeacherID  *uuid.UUID `json:"session_teacher_id,omitempty" gorm:"column:session_teacher_id;type:uuid;index"`
	SessionLocationID *uuid.UUID `json:"session_location_id,omitempty" gorm:"column:session_location_id;type:uuid"`

	SessionNote *string `json:"session_note,omitempty" gorm:"column:session_note;type:text"`

	SessionCreatedAt time.Time      `json:"session_created_at" gorm:"column:session_created_at;type:timestamptz;not null;default:now()"`
	SessionUpdatedAt time.Time      `json:"session_updated_at" gorm:"column:session_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt        gorm.DeletedAt `json:"session_deleted_at,omitempty" gorm:"column:session_deleted_at;type:timestamptz;index"`
}

func (SessionModel) TableName() string {
	return "class_sessions"
}
