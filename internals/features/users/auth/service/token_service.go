// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"newgate_backend/internals/configs"
	authModel "newgate_backend/internals/features/users/auth/model"
	"newgate_backend/internals/features/users/auth/dto"
	userModel "newgate_backend/internals/features/users/user/model"
	helper "newgate_backend/internals/helpers"
)

const (
	accessTTL  = 60 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

// ========================== TOKEN ISSUANCE ==========================

func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       u.ID.String(),
		"user_name": u.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("signing secret is not configured")
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Only the hash of a refresh token ever touches the database.
func computeRefreshHash(token, secret string) string {
	sum := sha256.Sum256([]byte(token + "." + secret))
	return hex.EncodeToString(sum[:])
}

// issueTokenPair signs a new access + refresh pair and persists the refresh
// hash so it can be rotated or revoked later.
func issueTokenPair(db *gorm.DB, c *fiber.Ctx, u userModel.UserModel) (*dto.TokenPairDTO, error) {
	now := nowUTC()

	access, err := signToken(buildAccessClaims(u, now), configs.JWTSecret)
	if err != nil {
		return nil, err
	}
	refresh, err := signToken(buildRefreshClaims(u.ID, now), configs.JWTRefreshSecret)
	if err != nil {
		return nil, err
	}

	rt := authModel.RefreshTokenModel{
		UserID:    u.ID,
		Token:     computeRefreshHash(refresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTTL),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}
	if err := db.Create(&rt).Error; err != nil {
		return nil, err
	}

	return &dto.TokenPairDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTTL.Seconds()),
		User:         dto.ToUserDTO(u),
	}, nil
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	var body dto.RefreshRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	raw := strings.TrimSpace(body.RefreshToken)
	if raw == "" {
		raw = strings.TrimSpace(c.Cookies("refresh_token"))
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	refreshSecret := configs.JWTRefreshSecret
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// The hash must still be known; a rotated-out token is rejected.
	hash := computeRefreshHash(raw, refreshSecret)
	var stored authModel.RefreshTokenModel
	if err := db.Where("token = ? AND expires_at > ?", hash, nowUTC()).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token not recognized")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account has been deactivated")
	}

	// ROTATE: drop the old token before issuing the new pair
	if err := db.Delete(&authModel.RefreshTokenModel{}, "token = ?", hash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate refresh token")
	}

	pair, err := issueTokenPair(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue new tokens")
	}
	return helper.JsonOK(c, "Token refreshed", pair)
}

func strptr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
