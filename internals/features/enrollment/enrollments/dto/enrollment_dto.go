// file: internals/features/enrollment/enrollments/dto/enrollment_dto.go
package dto

import (
	"github.com/google/uuid"

	enrollmentModel "izone_backend/internals/features/enrollment/enrollments/model"
)

type CreateEnrollmentRequest struct {
	EnrollmentClassID   uuid.UUID `json:"enrollment_class_id" validate:"required"`
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" validate:"required"`
	EnrollmentStatus    *string   `json:"enrollment_status,omitempty" validate:"omitempty,oneof=reserved enrolled"`
	EnrollmentNote      *string   `json:"enrollment_note,omitempty"`
}

func (r *CreateEnrollmentRequest) ToModel() *enrollmentModel.EnrollmentModel {
	status := enrollmentModel.EnrollmentStatusReserved
	if r.EnrollmentStatus != nil {
		status = *r.EnrollmentStatus
	}
	return &enrollmentModel.EnrollmentModel{
		EnrollmentClassID:   r.EnrollmentClassID,
		EnrollmentStudentID: r.EnrollmentStudentID,
		EnrollmentStatus:    status,
		EnrollmentNote:      r.EnrollmentNote,
	}
}

type UpdateEnrollmentRequest struct {
	EnrollmentStatus *string `json:"enrollment_status,omitempty" validate:"omitempty,oneof=reserved enrolled cancelled"`
	EnrollmentNote   *string `json:"enrollment_note,omitempty"`
}
