// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	paymentModel "izone_backend/internals/features/finance/payments/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans must be called during app bootstrap.
// useProduction=true for Production, false for Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	FirstName string
	Email     string
	Phone     string
}

/* =========================================================
   Generate Snap Token
========================================================= */

// GenerateSnapToken opens a gateway transaction for a pending payment and
// returns the snap token plus redirect URL. PaymentExternalID is used as the
// midtrans OrderID, which is how the webhook finds the row again.
func GenerateSnapToken(p *paymentModel.PaymentModel, cust CustomerInput) (string, string, error) {
	if p.PaymentAmount <= 0 {
		return "", "", errors.New("invalid payment_amount")
	}
	if p.PaymentExternalID == nil || *p.PaymentExternalID == "" {
		return "", "", errors.New("payment_external_id is required (used as OrderID)")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *p.PaymentExternalID,
			GrossAmt: p.PaymentAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       *p.PaymentExternalID,
				Price:    p.PaymentAmount,
				Qty:      1,
				Name:     noteOr(p.PaymentNote, "Tuition Payment"),
				Category: "Tuition",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

// MapTransactionStatus folds a midtrans notification into our payment status.
// Returns "" when the notification should not change the stored status
// (e.g. a pending ping for an already pending payment).
func MapTransactionStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return paymentModel.PaymentStatusPaid
		}
		return ""
	case "settlement":
		return paymentModel.PaymentStatusPaid
	case "deny", "cancel", "failure":
		return paymentModel.PaymentStatusFailed
	case "expire":
		return paymentModel.PaymentStatusExpired
	case "refund", "partial_refund":
		return paymentModel.PaymentStatusRefunded
	default:
		return ""
	}
}

func noteOr(note *string, def string) string {
	if note != nil && *note != "" {
		return *note
	}
	return def
}
