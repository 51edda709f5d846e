// file: internals/features/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationModel maps the `notifications` table. Payload is free-form
// JSON (e.g. {"class_id": "...", "session_date": "..."}) so every feature
// can attach its own context.
type NotificationModel struct {
	NotificationID uuid.UUID `json:"notification_id" gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey"`

	NotificationUserID *uuid.UUID `json:"notification_user_id,omitempty" gorm:"column:notification_user_id;type:uuid;index"` // nil = broadcast

	NotificationTitle   string         `json:"notification_title" gorm:"column:notification_title;type:varchar(200);not null"`
	NotificationBody    string         `json:"notification_body" gorm:"column:notification_body;type:text;not null"`
	NotificationPayload datatypes.JSON `json:"notification_payload,omitempty" gorm:"column:notification_payload;type:jsonb"`

	NotificationIsRead bool       `json:"notification_is_read" gorm:"column:notification_is_read;not null;default:false"`
	NotificationReadAt *time.Time `json:"notification_read_at,omitempty" gorm:"column:notification_read_at;type:timestamptz"`

	NotificationCreatedAt time.Time      `json:"notification_created_at" gorm:"column:notification_created_at;type:timestamptz;not null;default:now()"`
	NotificationUpdatedAt time.Time      `json:"notification_updated_at" gorm:"column:notification_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt             gorm.DeletedAt `json:"notification_deleted_at,omitempty" gorm:"column:notification_deleted_at;type:timestamptz;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
