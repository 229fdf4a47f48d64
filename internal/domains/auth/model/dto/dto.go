package dto

import (
	"time"

	"github.com/google/uuid"

	"riverstay/infras/jwt"
	userModel "riverstay/internal/domains/user/model"
	gModel "riverstay/shared/model"
	"riverstay/shared/timezone"
)

type SignupRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=20"`
}

func (r *SignupRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Email:    r.Email,
		Password: hashedPassword,
		IsAdmin:  false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.Email,
			ModifiedBy: r.Email,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (l *LoginResponse) FromToken(token *jwt.Token) {
	l.AccessToken = token.AccessToken
	l.TokenType = token.TokenType
	l.ExpiresIn = token.ExpiresIn
}

type UserRegisteredEvent struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}
