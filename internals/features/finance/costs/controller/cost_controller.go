// file: internals/features/finance/costs/controller/cost_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "izone_backend/internals/features/finance/costs/dto"
	costModel "izone_backend/internals/features/finance/costs/model"
	helper "izone_backend/internals/helpers"
)

type CostController struct {
	DB *gorm.DB
}

func NewCostController(db *gorm.DB) *CostController {
	return &CostController{DB: db}
}

var validate = validator.New()

func (ctl *CostController) CreateCost(c *fiber.Ctx) error {
	var req dto.CreateCostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	cost, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "cost_date must be YYYY-MM-DD")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(cost).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create cost")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Cost recorded", cost)
}

// ListCosts supports ?month=YYYY-MM for the monthly expense view, plus a
// category filter.
func (ctl *CostController) ListCosts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&costModel.CostModel{})
	if month := c.Query("month"); month != "" {
		q = q.Where("to_char(cost_date, 'YYYY-MM') = ?", month)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("cost_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count costs")
	}

	var rows []costModel.CostModel
	if err := q.Order("cost_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list costs")
	}

	return helper.Success(c, "OK", fiber.Map{
		"costs":      rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (ctl *CostController) UpdateCost(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid cost id")
	}

	var req dto.UpdateCostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cost costModel.CostModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&cost, "cost_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Cost not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load cost")
	}

	if err := req.Apply(&cost); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "cost_date must be YYYY-MM-DD")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&cost).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update cost")
	}
	return helper.Success(c, "Cost updated", cost)
}

func (ctl *CostController) DeleteCost(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid cost id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&costModel.CostModel{}, "cost_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete cost")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Cost not found")
	}
	return helper.Success(c, "Cost deleted", nil)
}
