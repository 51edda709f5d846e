// file: internals/features/academics/locations/model/location_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationModel maps the `locations` table (classrooms / branches).
type LocationModel struct {
	LocationID uuid.UUID `json:"location_id" gorm:"column:location_id;type:uuid;default:gen_random_uuid();primaryKey"`

	LocationName    string `json:"location_name" gorm:"column:location_name;type:varchar(160);not null"`
	LocationAddress string `json:"location_address" gorm:"column:location_address;type:text;not null"`

	// Seats available in the room; classes scheduled here may not exceed it.
	LocationCapacity int `json:"location_capacity" gorm:"column:location_capacity;not null;default:0"`

	LocationCreatedAt time.Time      `json:"location_created_at" gorm:"column:location_created_at;type:timestamptz;not null;default:now()"`
	LocationUpdatedAt time.Time      `json:"location_updated_at" gorm:"column:location_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt         gorm.DeletedAt `json:"location_deleted_at,omitempty" gorm:"column:location_deleted_at;type:timestamptz;index"`
}

func (LocationModel) TableName() string {
	return "locations"
}
