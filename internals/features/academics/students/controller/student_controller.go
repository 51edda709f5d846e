// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "izone_backend/internals/features/academics/students/dto"
	studentModel "izone_backend/internals/features/academics/students/model"
	helper "izone_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(student).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", student)
}

func (ctl *StudentController) ListStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&studentModel.StudentModel{})
	if name := c.Query("q"); name != "" {
		q = q.Where("student_name ILIKE ?", "%"+name+"%")
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("student_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var rows []studentModel.StudentModel
	if err := q.Order("student_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list students")
	}

	return helper.Success(c, "OK", fiber.Map{
		"students":   rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (ctl *StudentController) GetStudent(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student studentModel.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load student")
	}
	return helper.Success(c, "OK", student)
}

func (ctl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student studentModel.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	req.Apply(&student)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&student).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.Success(c, "Student updated", student)
}

func (ctl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&studentModel.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.Success(c, "Student deleted", nil)
}
