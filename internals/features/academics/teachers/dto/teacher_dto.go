// file: internals/features/academics/teachers/dto/teacher_dto.go
package dto

import (
	teacherModel "izone_backend/internals/features/academics/teachers/model"
)

type CreateTeacherRequest struct {
	TeacherName        string  `json:"teacher_name" validate:"required,min=1,max=160"`
	TeacherEmail       *string `json:"teacher_email,omitempty" validate:"omitempty,email"`
	TeacherPhone       *string `json:"teacher_phone,omitempty" validate:"omitempty,max=32"`
	TeacherSessionRate int64   `json:"teacher_session_rate" validate:"gte=0"`
}

func (r *CreateTeacherRequest) ToModel() *teacherModel.TeacherModel {
	return &teacherModel.TeacherModel{
		TeacherName:        r.TeacherName,
		TeacherEmail:       r.TeacherEmail,
		TeacherPhone:       r.TeacherPhone,
		TeacherSessionRate: r.TeacherSessionRate,
		TeacherIsActive:    true,
	}
}

type UpdateTeacherRequest struct {
	TeacherName        *string `json:"teacher_name,omitempty" validate:"omitempty,min=1,max=160"`
	TeacherEmail       *string `json:"teacher_email,omitempty" validate:"omitempty,email"`
	TeacherPhone       *string `json:"teacher_phone,omitempty" validate:"omitempty,max=32"`
	TeacherSessionRate *int64  `json:"teacher_session_rate,omitempty" validate:"omitempty,gte=0"`
	TeacherIsActive    *bool   `json:"teacher_is_active,omitempty"`
}

func (r *UpdateTeacherRequest) Apply(m *teacherModel.TeacherModel) {
	if r.TeacherName != nil {
		m.TeacherName = *r.TeacherName
	}
	if r.TeacherEmail != nil {
		m.TeacherEmail = r.TeacherEmail
	}
	if r.TeacherPhone != nil {
		m.TeacherPhone = r.TeacherPhone
	}
	if r.TeacherSessionRate != nil {
		m.TeacherSessionRate = *r.TeacherSessionRate
	}
	if r.TeacherIsActive != nil {
		m.TeacherIsActive = *r.TeacherIsActive
	}
}
