// file: internals/features/academics/courses/controller/course_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "izone_backend/internals/features/academics/courses/dto"
	courseModel "izone_backend/internals/features/academics/courses/model"
	helper "izone_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

var validate = validator.New()

func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	course := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", course)
}

func (ctl *CourseController) ListCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&courseModel.CourseModel{})
	if name := c.Query("q"); name != "" {
		q = q.Where("course_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var rows []courseModel.CourseModel
	if err := q.Order("course_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list courses")
	}

	return helper.Success(c, "OK", fiber.Map{
		"courses":    rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (ctl *CourseController) GetCourse(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModel.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load course")
	}
	return helper.Success(c, "OK", course)
}

// UpdateCourse applies the patch only when the submitted version still
// matches; a concurrent edit bumps the version and the caller gets a 409.
func (ctl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load course")
	}

	req.Apply(&course)

	res := ctl.DB.WithContext(c.UserContext()).Model(&courseModel.CourseModel{}).
		Where("course_id = ? AND course_version = ?", id, req.CourseVersion).
		Updates(map[string]interface{}{
			"course_name":                       course.CourseName,
			"course_code":                       course.CourseCode,
			"course_tuition_fee":                course.CourseTuitionFee,
			"course_total_sessions":             course.CourseTotalSessions,
			"course_material_price_per_session": course.CourseMaterialPricePerSession,
			"course_description":                course.CourseDescription,
			"course_version":                    gorm.Expr("course_version + 1"),
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusConflict, "Course was modified concurrently; reload and retry")
	}

	_ = ctl.DB.WithContext(c.UserContext()).First(&course, "course_id = ?", id).Error
	return helper.Success(c, "Course updated", course)
}

func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&courseModel.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.Success(c, "Course deleted", nil)
}
