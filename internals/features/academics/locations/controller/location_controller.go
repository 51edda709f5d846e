// file: internals/features/academics/locations/controller/location_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "izone_backend/internals/features/academics/locations/dto"
	locationModel "izone_backend/internals/features/academics/locations/model"
	helper "izone_backend/internals/helpers"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

var validate = validator.New()

func (ctl *LocationController) CreateLocation(c *fiber.Ctx) error {
	var req dto.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	loc := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(loc).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create location")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Location created", loc)
}

func (ctl *LocationController) ListLocations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&locationModel.LocationModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count locations")
	}

	var rows []locationModel.LocationModel
	if err := q.Order("location_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list locations")
	}

	return helper.Success(c, "OK", fiber.Map{
		"locations":  rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (ctl *LocationController) GetLocation(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid location id")
	}

	var loc locationModel.LocationModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&loc, "location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Location not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load location")
	}
	return helper.Success(c, "OK", loc)
}

func (ctl *LocationController) UpdateLocation(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid location id")
	}

	var req dto.UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var loc locationModel.LocationModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&loc, "location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Location not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load location")
	}

	req.Apply(&loc)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&loc).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update location")
	}
	return helper.Success(c, "Location updated", loc)
}

func (ctl *LocationController) DeleteLocation(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid location id")
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&locationModel.LocationModel{}, "location_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete location")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Location not found")
	}
	return helper.Success(c, "Location deleted", nil)
}
