// file: internals/features/academics/courses/dto/course_dto.go
package dto

import (
	courseModel "izone_backend/internals/features/academics/courses/model"
)

type CreateCourseRequest struct {
	CourseName                    string  `json:"course_name" validate:"required,min=1,max=160"`
	CourseCode                    *string `json:"course_code,omitempty" validate:"omitempty,max=40"`
	CourseTuitionFee              int64   `json:"course_tuition_fee" validate:"gte=0"`
	CourseTotalSessions           int     `json:"course_total_sessions" validate:"required,gt=0"`
	CourseMaterialPricePerSession int64   `json:"course_material_price_per_session" validate:"gte=0"`
	CourseDescription             *string `json:"course_description,omitempty"`
}

func (r *CreateCourseRequest) ToModel() *courseModel.CourseModel {
	return &courseModel.CourseModel{
		CourseName:                    r.CourseName,
		CourseCode:                    r.CourseCode,
		CourseTuitionFee:              r.CourseTuitionFee,
		CourseTotalSessions:           r.CourseTotalSessions,
		CourseMaterialPricePerSession: r.CourseMaterialPricePerSession,
		CourseDescription:             r.CourseDescription,
	}
}

// UpdateCourseRequest carries the optimistic concurrency token: the update
// is rejected with 409 when course_version no longer matches.
type UpdateCourseRequest struct {
	CourseVersion int `json:"course_version" validate:"required,gt=0"`

	CourseName                    *string `json:"course_name,omitempty" validate:"omitempty,min=1,max=160"`
	CourseCode                    *string `json:"course_code,omitempty" validate:"omitempty,max=40"`
	CourseTuitionFee              *int64  `json:"course_tuition_fee,omitempty" validate:"omitempty,gte=0"`
	CourseTotalSessions           *int    `json:"course_total_sessions,omitempty" validate:"omitempty,gt=0"`
	CourseMaterialPricePerSession *int64  `json:"course_material_price_per_session,omitempty" validate:"omitempty,gte=0"`
	CourseDescription             *string `json:"course_description,omitempty"`
}

func (r *UpdateCourseRequest) Apply(m *courseModel.CourseModel) {
	if r.CourseName != nil {
		m.CourseName = *r.CourseName
	}
	if r.CourseCode != nil {
		m.CourseCode = r.CourseCode
	}
	if r.CourseTuitionFee != nil {
		m.CourseTuitionFee = *r.CourseTuitionFee
	}
	if r.CourseTotalSessions != nil {
		m.CourseTotalSessions = *r.CourseTotalSessions
	}
	if r.CourseMaterialPricePerSession != nil {
		m.CourseMaterialPricePerSession = *r.CourseMaterialPricePerSession
	}
	if r.CourseDescription != nil {
		m.CourseDescription = r.CourseDescription
	}
}
