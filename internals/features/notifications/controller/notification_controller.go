// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "izone_backend/internals/features/notifications/dto"
	notificationModel "izone_backend/internals/features/notifications/model"
	helper "izone_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

var validate = validator.New()

func (ctl *NotificationController) CreateNotification(c *fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create notification")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Notification created", row)
}

// ListNotifications returns the caller's notifications plus broadcasts
// (rows with no user id). ?unread=true narrows to unread only.
func (ctl *NotificationController) ListNotifications(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&notificationModel.NotificationModel{})
	if userID, ok := c.Locals("user_id").(uuid.UUID); ok && userID != uuid.Nil {
		q = q.Where("notification_user_id = ? OR notification_user_id IS NULL", userID)
	}
	if c.Query("unread") == "true" {
		q = q.Where("notification_is_read = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var rows []notificationModel.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list notifications")
	}

	return helper.Success(c, "OK", fiber.Map{
		"notifications": rows,
		"pagination":    helper.BuildPagination(paging, total, len(rows)),
	})
}

func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, ok := helper.ParamUUID(c, "id")
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	now := time.Now()
	res := ctl.DB.WithContext(c.UserContext()).
		Model(&notificationModel.NotificationModel{}).
		Where("notification_id = ? AND notification_is_read = false", id).
		Updates(map[string]any{
			"notification_is_read": true,
			"notification_read_at": now,
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark notification read")
	}
	if res.RowsAffected == 0 {
		// Either missing or already read. Check which.
		var count int64
		ctl.DB.WithContext(c.UserContext()).
			Model(&notificationModel.NotificationModel{}).
			Where("notification_id = ?", id).Count(&count)
		if count == 0 {
			return helper.Error(c, fiber.StatusNotFound, "Notification not found")
		}
	}
	return helper.Success(c, "Notification marked read", nil)
}

func (ctl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	now := time.Now()
	q := ctl.DB.WithContext(c.UserContext()).
		Model(&notificationModel.NotificationModel{}).
		Where("notification_is_read = false")
	if userID, ok := c.Locals("user_id").(uuid.UUID); ok && userID != uuid.Nil {
		q = q.Where("notification_user_id = ? OR notification_user_id IS NULL", userID)
	}
	res := q.Updates(map[string]any{
		"notification_is_read": true,
		"notification_read_at": now,
	})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark notifications read")
	}
	return helper.Success(c, "Notifications marked read", fiber.Map{"updated": res.RowsAffected})
}
