// file: internals/features/academics/teachers/controller/teacher_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "izone_backend/internals/features/academics/teachers/dto"
	teacherModel "izone_backend/internals/features/academics/teachers/model"
	helper "izone_backend/internals/helpers"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

var validate = validator.New()

func (ctl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	teacher := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(teacher).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher created", teacher)
}

func (ctl *TeacherController) ListTeachers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&teacherModel.TeacherModel{})
	if name := c.Query("q"); name != "" {
		q = q.Where("teacher_name ILIKE ?", "%"+name+"%")
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("teacher_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var rows []teacherModel.TeacherModel
	if err := q.Order("teacher_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list teachers")
	}

	return helper.Success(c, "OK", fiber.Map{
		"teachers":   rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (ctl *TeacherController) GetTeacher(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	var teacher teacherModel.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load teacher")
	}
	return helper.Success(c, "OK", teacher)
}

func (ctl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var teacher teacherModel.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load teacher")
	}

	req.Apply(&teacher)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&teacher).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.Success(c, "Teacher updated", teacher)
}

func (ctl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&teacherModel.TeacherModel{}, "teacher_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Teacher not found")
	}
	return helper.Success(c, "Teacher deleted", nil)
}
