// file: internals/features/finance/costs/dto/cost_dto.go
package dto

import (
	"time"

	costModel "izone_backend/internals/features/finance/costs/model"
)

type CreateCostRequest struct {
	CostCategory string  `json:"cost_category" validate:"required,max=40"`
	CostAmount   int64   `json:"cost_amount" validate:"required,gt=0"`
	CostDate     string  `json:"cost_date" validate:"required"` // YYYY-MM-DD
	CostNote     *string `json:"cost_note,omitempty"`
}

func (r *CreateCostRequest) ToModel() (*costModel.CostModel, error) {
	date, err := time.Parse("2006-01-02", r.CostDate)
	if err != nil {
		return nil, err
	}
	return &costModel.CostModel{
		CostCategory: r.CostCategory,
		CostAmount:   r.CostAmount,
		CostDate:     date,
		CostNote:     r.CostNote,
	}, nil
}

type UpdateCostRequest struct {
	CostCategory *string `json:"cost_category,omitempty" validate:"omitempty,max=40"`
	CostAmount   *int64  `json:"cost_amount,omitempty" validate:"omitempty,gt=0"`
	CostDate     *string `json:"cost_date,omitempty"`
	CostNote     *string `json:"cost_note,omitempty"`
}

func (r *UpdateCostRequest) Apply(cost *costModel.CostModel) error {
	if r.CostCategory != nil {
		cost.CostCategory = *r.CostCategory
	}
	if r.CostAmount != nil {
		cost.CostAmount = *r.CostAmount
	}
	if r.CostDate != nil {
		date, err := time.Parse("2006-01-02", *r.CostDate)
		if err != nil {
			return err
		}
		cost.CostDate = date
	}
	if r.CostNote != nil {
		cost.CostNote = r.CostNote
	}
	return nil
}
