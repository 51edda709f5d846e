// file: internals/features/academics/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StudentStatusActive   = "active"
	StudentStatusInactive = "inactive"
)

// StudentModel maps the `students` table.
type StudentModel struct {
	StudentID uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`

	StudentName  string  `json:"student_name" gorm:"column:student_name;type:varchar(160);not null"`
	StudentEmail *string `json:"student_email,omitempty" gorm:"column:student_email;type:varchar(160)"`
	StudentPhone *string `json:"student_phone,omitempty" gorm:"column:student_phone;type:varchar(32)"`
	StudentDOB   *time.Time `json:"student_dob,omitempty" gorm:"column:student_dob;type:date"`

	StudentStatus string `json:"student_status" gorm:"column:student_status;type:varchar(16);not null;default:'active'"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;type:timestamptz;not null;default:now()"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt        gorm.DeletedAt `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at;type:timestamptz;index"`
}

func (StudentModel) TableName() string {
	return "students"
}
