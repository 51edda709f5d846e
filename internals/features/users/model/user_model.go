// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserModel maps the `users` table (back-office accounts).
type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`

	UserName     string  `json:"user_name" gorm:"column:user_name;type:varchar(80);not null;uniqueIndex"`
	UserFullName string  `json:"user_full_name" gorm:"column:user_full_name;type:varchar(160);not null"`
	UserEmail    *string `json:"user_email,omitempty" gorm:"column:user_email;type:varchar(160)"`

	UserPassword string `json:"-" gorm:"column:user_password;type:varchar(100);not null"`
	UserRole     string `json:"user_role" gorm:"column:user_role;type:varchar(16);not null;default:'staff'"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;default:now()"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt     gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;type:timestamptz;index"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPassword = string(hash)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(plain)) == nil
}
