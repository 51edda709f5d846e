// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	enrollmentModel "izone_backend/internals/features/enrollment/enrollments/model"
	dto "izone_backend/internals/features/finance/payments/dto"
	paymentModel "izone_backend/internals/features/finance/payments/model"
	paymentService "izone_backend/internals/features/finance/payments/service"
	notificationModel "izone_backend/internals/features/notifications/model"
	helper "izone_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validate = validator.New()

// CreatePayment records a tuition payment. Cash payments settle immediately;
// gateway payments are created pending and get a snap token the front office
// hands to the payer.
func (ctl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var enrollment enrollmentModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&enrollment, "enrollment_id = ?", req.PaymentEnrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load enrollment")
	}

	payment := req.ToModel()

	if payment.PaymentMethod == paymentModel.PaymentMethodCash {
		now := time.Now()
		payment.PaymentStatus = paymentModel.PaymentStatusPaid
		payment.PaymentPaidAt = &now
		if err := ctl.DB.WithContext(c.UserContext()).Create(payment).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create payment")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment recorded",
			dto.SnapTokenResponse{Payment: payment})
	}

	orderID := fmt.Sprintf("PAY-%s", uuid.New().String())
	payment.PaymentExternalID = &orderID
	if err := ctl.DB.WithContext(c.UserContext()).Create(payment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	token, redirectURL, err := paymentService.GenerateSnapToken(payment, paymentService.CustomerInput{
		FirstName: req.CustomerName,
		Email:     req.CustomerEmail,
		Phone:     req.CustomerPhone,
	})
	if err != nil {
		log.Printf("[payments] snap token for %s failed: %v", orderID, err)
		return helper.Error(c, fiber.StatusBadGateway, "Failed to open gateway transaction")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment created",
		dto.SnapTokenResponse{Payment: payment, SnapToken: token, RedirectURL: redirectURL})
}

func (ctl *PaymentController) ListPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&paymentModel.PaymentModel{})
	if enrollmentID := c.Query("enrollment_id"); enrollmentID != "" {
		q = q.Where("payment_enrollment_id = ?", enrollmentID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}
	if method := c.Query("method"); method != "" {
		q = q.Where("payment_method = ?", method)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count payments")
	}

	var rows []paymentModel.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list payments")
	}

	return helper.Success(c, "OK", fiber.Map{
		"payments":   rows,
		"pagination": helper.BuildPagination(paging, total, len(rows)),
	})
}

func (ctl *PaymentController) GetPayment(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payment id")
	}

	var payment paymentModel.PaymentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Payment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load payment")
	}
	return helper.Success(c, "OK", payment)
}

func (ctl *PaymentController) UpdatePayment(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payment id")
	}

	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var payment paymentModel.PaymentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&payment, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Payment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load payment")
	}

	if req.PaymentStatus != nil {
		payment.PaymentStatus = *req.PaymentStatus
		if *req.PaymentStatus == paymentModel.PaymentStatusPaid && payment.PaymentPaidAt == nil {
			now := time.Now()
			payment.PaymentPaidAt = &now
		}
	}
	if req.PaymentNote != nil {
		payment.PaymentNote = req.PaymentNote
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&payment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update payment")
	}
	return helper.Success(c, "Payment updated", payment)
}

// HandleNotification is the midtrans webhook. It is unauthenticated, so it
// only trusts the order_id lookup and always answers 200 for unknown orders
// to stop the gateway from retrying forever.
func (ctl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var notif dto.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification body")
	}
	if notif.OrderID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "order_id is required")
	}

	newStatus := paymentService.MapTransactionStatus(notif.TransactionStatus, notif.FraudStatus)
	if newStatus == "" {
		return helper.Success(c, "Notification ignored", nil)
	}

	var payment paymentModel.PaymentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&payment, "payment_external_id = ?", notif.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[payments] webhook for unknown order %s", notif.OrderID)
			return helper.Success(c, "Unknown order", nil)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load payment")
	}

	if payment.PaymentStatus == newStatus {
		return helper.Success(c, "No change", payment)
	}

	payment.PaymentStatus = newStatus
	if newStatus == paymentModel.PaymentStatusPaid && payment.PaymentPaidAt == nil {
		now := time.Now()
		payment.PaymentPaidAt = &now
	}

	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}
		notification := notificationModel.NotificationModel{
			NotificationTitle: "Payment " + newStatus,
			NotificationBody:  fmt.Sprintf("Payment %s is now %s", notif.OrderID, newStatus),
			NotificationPayload: datatypes.JSON(fmt.Sprintf(
				`{"payment_id":%q,"order_id":%q,"status":%q}`,
				payment.PaymentID.String(), notif.OrderID, newStatus)),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to apply notification")
	}
	return helper.Success(c, "Payment updated", payment)
}
