// file: internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "izone_backend/internals/features/users/dto"
	userModel "izone_backend/internals/features/users/model"
	helper "izone_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

func (ctl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return helper.Error(c, fiber.StatusConflict, "Username already taken")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", user)
}

func (ctl *UserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&userModel.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var rows []userModel.UserModel
	if err := q.Order("user_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list users")
	}

	return helper.Success(c, "OK", fiber.Map{
		"users":      rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (ctl *UserController) GetUser(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	return helper.Success(c, "OK", user)
}

func (ctl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	if err := req.Apply(&user); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.Success(c, "User updated", user)
}

func (ctl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&userModel.UserModel{}, "user_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "User deleted", nil)
}
