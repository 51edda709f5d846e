// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusExpired  = "expired"
	PaymentStatusRefunded = "refunded"

	PaymentMethodCash    = "cash"
	PaymentMethodGateway = "gateway"
)

// PaymentModel maps the `payments` table: tuition money collected against an
// enrollment, either cash at the desk or through the midtrans gateway.
type PaymentModel struct {
	PaymentID uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	PaymentEnrollmentID uuid.UUID `json:"payment_enrollment_id" gorm:"column:payment_enrollment_id;type:uuid;not null;index"`

	PaymentAmount int64  `json:"payment_amount" gorm:"column:payment_amount;not null"`
	PaymentMethod string `json:"payment_method" gorm:"column:payment_method;type:varchar(16);not null;default:'cash'"`
	PaymentStatus string `json:"payment_status" gorm:"column:payment_status;type:varchar(16);not null;default:'pending'"`

	// Gateway order id; used as the midtrans OrderID and matched on webhook.
	PaymentExternalID *string `json:"payment_external_id,omitempty" gorm:"column:payment_external_id;type:varchar(64);uniqueIndex"`

	PaymentPaidAt *time.Time `json:"payment_paid_at,omitempty" gorm:"column:payment_paid_at;type:timestamptz"`
	PaymentNote   *string    `json:"payment_note,omitempty" gorm:"column:payment_note;type:text"`

	PaymentCreatedAt time.Time      `json:"payment_created_at" gorm:"column:payment_created_at;type:timestamptz;not null;default:now()"`
	PaymentUpdatedAt time.Time      `json:"payment_updated_at" gorm:"column:payment_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt        gorm.DeletedAt `json:"payment_deleted_at,omitempty" gorm:"column:payment_deleted_at;type:timestamptz;index"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
