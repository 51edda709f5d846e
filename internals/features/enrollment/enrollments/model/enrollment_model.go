// file: internals/features/enrollment/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EnrollmentStatusReserved  = "reserved"
	EnrollmentStatusEnrolled  = "enrolled"
	EnrollmentStatusCancelled = "cancelled"
)

// EnrollmentModel maps `class_enrollments`: a student's seat in a class.
// Reserved seats count against class capacity until cancelled.
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `json:"enrollment_id" gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	EnrollmentClassID   uuid.UUID `json:"enrollment_class_id" gorm:"column:enrollment_class_id;type:uuid;not null;index:idx_enrollment_class_student,unique,where:enrollment_deleted_at IS NULL"`
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" gorm:"column:enrollment_student_id;type:uuid;not null;index:idx_enrollment_class_student,unique,where:enrollment_deleted_at IS NULL"`

	EnrollmentStatus string    `json:"enrollment_status" gorm:"column:enrollment_status;type:varchar(16);not null;default:'reserved'"`
	EnrollmentDate   time.Time `json:"enrollment_date" gorm:"column:enrollment_date;type:timestamptz;not null;default:now()"`

	EnrollmentNote *string `json:"enrollment_note,omitempty" gorm:"column:enrollment_note;type:text"`

	EnrollmentCreatedAt time.Time      `json:"enrollment_created_at" gorm:"column:enrollment_created_at;type:timestamptz;not null;default:now()"`
	EnrollmentUpdatedAt time.Time      `json:"enrollment_updated_at" gorm:"column:enrollment_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt           gorm.DeletedAt `json:"enrollment_deleted_at,omitempty" gorm:"column:enrollment_deleted_at;type:timestamptz;index"`
}

func (EnrollmentModel) TableName() string {
	return "class_enrollments"
}
