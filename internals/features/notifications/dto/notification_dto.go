// file: internals/features/notifications/dto/notification_dto.go
package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	notificationModel "izone_backend/internals/features/notifications/model"
)

type CreateNotificationRequest struct {
	NotificationUserID  *uuid.UUID     `json:"notification_user_id,omitempty"` // nil = broadcast
	NotificationTitle   string         `json:"notification_title" validate:"required,max=200"`
	NotificationBody    string         `json:"notification_body" validate:"required"`
	NotificationPayload datatypes.JSON `json:"notification_payload,omitempty"`
}

func (r *CreateNotificationRequest) ToModel() *notificationModel.NotificationModel {
	return &notificationModel.NotificationModel{
		NotificationUserID:  r.NotificationUserID,
		NotificationTitle:   r.NotificationTitle,
		NotificationBody:    r.NotificationBody,
		NotificationPayload: r.NotificationPayload,
	}
}
