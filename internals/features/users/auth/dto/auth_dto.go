package dto

import (
	"time"

	"newgate_backend/internals/features/users/user/model"
)

// ============================
// Request DTO
// ============================

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email or user_name
	Password   string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ============================
// Response DTO
// ============================

type UserDTO struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenPairDTO struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	TokenType    string  `json:"token_type"`
	ExpiresIn    int64   `json:"expires_in"` // access token lifetime, seconds
	User         UserDTO `json:"user"`
}

func ToUserDTO(u model.UserModel) UserDTO {
	return UserDTO{
		ID:        u.ID.String(),
		UserName:  u.UserName,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
