// file: internals/features/finance/costs/model/cost_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CostModel maps the `costs` table: operating expenses (rent, salaries,
// materials, misc) recorded per date for the monthly reports.
type CostModel struct {
	CostID uuid.UUID `json:"cost_id" gorm:"column:cost_id;type:uuid;default:gen_random_uuid();primaryKey"`

	CostCategory string    `json:"cost_category" gorm:"column:cost_category;type:varchar(40);not null"`
	CostAmount   int64     `json:"cost_amount" gorm:"column:cost_amount;not null"`
	CostDate     time.Time `json:"cost_date" gorm:"column:cost_date;type:date;not null;index"`

	CostNote *string `json:"cost_note,omitempty" gorm:"column:cost_note;type:text"`

	CostCreatedAt time.Time      `json:"cost_created_at" gorm:"column:cost_created_at;type:timestamptz;not null;default:now()"`
	CostUpdatedAt time.Time      `json:"cost_updated_at" gorm:"column:cost_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt     gorm.DeletedAt `json:"cost_deleted_at,omitempty" gorm:"column:cost_deleted_at;type:timestamptz;index"`
}

func (CostModel) TableName() string {
	return "costs"
}
