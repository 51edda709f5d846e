// file: internals/features/academics/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherModel maps the `teachers` table (lecturers).
type TeacherModel struct {
	TeacherID uuid.UUID `json:"teacher_id" gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey"`

	TeacherName  string  `json:"teacher_name" gorm:"column:teacher_name;type:varchar(160);not null"`
	TeacherEmail *string `json:"teacher_email,omitempty" gorm:"column:teacher_email;type:varchar(160)"`
	TeacherPhone *string `json:"teacher_phone,omitempty" gorm:"column:teacher_phone;type:varchar(32)"`

	// Default pay per taught session; a class may override it.
	TeacherSessionRate int64 `json:"teacher_session_rate" gorm:"column:teacher_session_rate;not null;default:0"`

	TeacherIsActive bool `json:"teacher_is_active" gorm:"column:teacher_is_active;not null;default:true"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;type:timestamptz;not null;default:now()"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt        gorm.DeletedAt `json:"teacher_deleted_at,omitempty" gorm:"column:teacher_deleted_at;type:timestamptz;index"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
