// file: internals/features/users/dto/user_dto.go
package dto

import (
	userModel "izone_backend/internals/features/users/model"
)

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	User         *userModel.UserModel `json:"user"`
}

type CreateUserRequest struct {
	UserName     string  `json:"user_name" validate:"required,max=80"`
	UserFullName string  `json:"user_full_name" validate:"required,max=160"`
	UserEmail    *string `json:"user_email,omitempty" validate:"omitempty,email"`
	Password     string  `json:"password" validate:"required,min=8"`
	UserRole     string  `json:"user_role" validate:"required,oneof=admin staff"`
}

func (r *CreateUserRequest) ToModel() (*userModel.UserModel, error) {
	user := &userModel.UserModel{
		UserName:     r.UserName,
		UserFullName: r.UserFullName,
		UserEmail:    r.UserEmail,
		UserRole:     r.UserRole,
		UserIsActive: true,
	}
	if err := user.SetPassword(r.Password); err != nil {
		return nil, err
	}
	return user, nil
}

type UpdateUserRequest struct {
	UserFullName *string `json:"user_full_name,omitempty" validate:"omitempty,max=160"`
	UserEmail    *string `json:"user_email,omitempty" validate:"omitempty,email"`
	Password     *string `json:"password,omitempty" validate:"omitempty,min=8"`
	UserRole     *string `json:"user_role,omitempty" validate:"omitempty,oneof=admin staff"`
	UserIsActive *bool   `json:"user_is_active,omitempty"`
}

func (r *UpdateUserRequest) Apply(user *userModel.UserModel) error {
	if r.UserFullName != nil {
		user.UserFullName = *r.UserFullName
	}
	if r.UserEmail != nil {
		user.UserEmail = r.UserEmail
	}
	if r.Password != nil {
		if err := user.SetPassword(*r.Password); err != nil {
			return err
		}
	}
	if r.UserRole != nil {
		user.UserRole = *r.UserRole
	}
	if r.UserIsActive != nil {
		user.UserIsActive = *r.UserIsActive
	}
	return nil
}
