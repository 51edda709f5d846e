// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"github.com/google/uuid"

	paymentModel "izone_backend/internals/features/finance/payments/model"
)

type CreatePaymentRequest struct {
	PaymentEnrollmentID uuid.UUID `json:"payment_enrollment_id" validate:"required"`
	PaymentAmount       int64     `json:"payment_amount" validate:"required,gt=0"`
	PaymentMethod       string    `json:"payment_method" validate:"required,oneof=cash gateway"`
	PaymentNote         *string   `json:"payment_note,omitempty"`

	// Gateway only. Forwarded to midtrans as customer details.
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}

func (r *CreatePaymentRequest) ToModel() *paymentModel.PaymentModel {
	return &paymentModel.PaymentModel{
		PaymentEnrollmentID: r.PaymentEnrollmentID,
		PaymentAmount:       r.PaymentAmount,
		PaymentMethod:       r.PaymentMethod,
		PaymentStatus:       paymentModel.PaymentStatusPending,
		PaymentNote:         r.PaymentNote,
	}
}

type UpdatePaymentRequest struct {
	PaymentStatus *string `json:"payment_status,omitempty" validate:"omitempty,oneof=pending paid failed expired refunded"`
	PaymentNote   *string `json:"payment_note,omitempty"`
}

// MidtransNotification is the subset of the webhook body we act on.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	GrossAmount       string `json:"gross_amount"`
}

type SnapTokenResponse struct {
	Payment     *paymentModel.PaymentModel `json:"payment"`
	SnapToken   string                     `json:"snap_token,omitempty"`
	RedirectURL string                     `json:"redirect_url,omitempty"`
}
