// file: internals/features/academics/locations/dto/location_dto.go
package dto

import (
	locationModel "izone_backend/internals/features/academics/locations/model"
)

type CreateLocationRequest struct {
	LocationName     string `json:"location_name" validate:"required,min=1,max=160"`
	LocationAddress  string `json:"location_address" validate:"required"`
	LocationCapacity int    `json:"location_capacity" validate:"required,gt=0"`
}

func (r *CreateLocationRequest) ToModel() *locationModel.LocationModel {
	return &locationModel.LocationModel{
		LocationName:     r.LocationName,
		LocationAddress:  r.LocationAddress,
		LocationCapacity: r.LocationCapacity,
	}
}

type UpdateLocationRequest struct {
	LocationName     *string `json:"location_name,omitempty" validate:"omitempty,min=1,max=160"`
	LocationAddress  *string `json:"location_address,omitempty"`
	LocationCapacity *int    `json:"location_capacity,omitempty" validate:"omitempty,gt=0"`
}

func (r *UpdateLocationRequest) Apply(m *locationModel.LocationModel) {
	if r.LocationName != nil {
		m.LocationName = *r.LocationName
	}
	if r.LocationAddress != nil {
		m.LocationAddress = *r.LocationAddress
	}
	if r.LocationCapacity != nil {
		m.LocationCapacity = *r.LocationCapacity
	}
}
