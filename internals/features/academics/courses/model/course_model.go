// file: internals/features/academics/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseModel maps the `courses` table (reference data a class is scheduled
// against: fee, total session count, material price).
type CourseModel struct {
	CourseID uuid.UUID `json:"course_id" gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey"`

	CourseName string  `json:"course_name" gorm:"column:course_name;type:varchar(160);not null"`
	CourseCode *string `json:"course_code,omitempty" gorm:"column:course_code;type:varchar(40);uniqueIndex"`

	CourseTuitionFee           int64 `json:"course_tuition_fee" gorm:"column:course_tuition_fee;not null;default:0"`
	CourseTotalSessions        int   `json:"course_total_sessions" gorm:"column:course_total_sessions;not null"`
	CourseMaterialPricePerSession int64 `json:"course_material_price_per_session" gorm:"column:course_material_price_per_session;not null;default:0"`

	CourseDescription *string `json:"course_description,omitempty" gorm:"column:course_description;type:text"`

	// Optimistic concurrency token; bumped on every update.
	CourseVersion int `json:"course_version" gorm:"column:course_version;not null;default:1"`

	CourseCreatedAt time.Time      `json:"course_created_at" gorm:"column:course_created_at;type:timestamptz;not null;default:now()"`
	CourseUpdatedAt time.Time      `json:"course_updated_at" gorm:"column:course_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt       gorm.DeletedAt `json:"course_deleted_at,omitempty" gorm:"column:course_deleted_at;type:timestamptz;index"`
}

func (CourseModel) TableName() string {
	return "courses"
}
