// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"izone_backend/internals/configs"
	dto "izone_backend/internals/features/users/dto"
	userModel "izone_backend/internals/features/users/model"
	helper "izone_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// Login checks credentials and issues the access + refresh token pair.
// Claims carry user_id and role; the auth middleware reads both.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_name = ?", req.UserName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	if !user.UserIsActive || !user.CheckPassword(req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	accessToken, err := signToken(&user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	refreshToken, err := signToken(&user, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.Success(c, "Login successful", dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         &user,
	})
}

func signToken(user *userModel.UserModel, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.UserRole,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
