// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	"fmt"
	"time"

	"izone_backend/internals/features/academics/classes/service"
	studentModel "izone_backend/internals/features/academics/students/model"
)

type CreateStudentRequest struct {
	StudentName  string  `json:"student_name" validate:"required,min=1,max=160"`
	StudentEmail *string `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentPhone *string `json:"student_phone,omitempty" validate:"omitempty,max=32"`
	StudentDOB   *string `json:"student_dob,omitempty"` // "2006-01-02"
}

func (r *CreateStudentRequest) ToModel() (*studentModel.StudentModel, error) {
	m := &studentModel.StudentModel{
		StudentName:   r.StudentName,
		StudentEmail:  r.StudentEmail,
		StudentPhone:  r.StudentPhone,
		StudentStatus: studentModel.StudentStatusActive,
	}
	if r.StudentDOB != nil {
		dob, err := time.Parse("2006-01-02", *r.StudentDOB)
		if err != nil {
			return nil, fmt.Errorf("%w: student_dob must be YYYY-MM-DD", service.ErrInvalidFormat)
		}
		m.StudentDOB = &dob
	}
	return m, nil
}

type UpdateStudentRequest struct {
	StudentName   *string `json:"student_name,omitempty" validate:"omitempty,min=1,max=160"`
	StudentEmail  *string `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentPhone  *string `json:"student_phone,omitempty" validate:"omitempty,max=32"`
	StudentStatus *string `json:"student_status,omitempty" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateStudentRequest) Apply(m *studentModel.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = *r.StudentName
	}
	if r.StudentEmail != nil {
		m.StudentEmail = r.StudentEmail
	}
	if r.StudentPhone != nil {
		m.StudentPhone = r.StudentPhone
	}
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
}
