// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"newgate_backend/internals/configs"
	authModel "newgate_backend/internals/features/users/auth/model"
	"newgate_backend/internals/features/users/auth/dto"
	userModel "newgate_backend/internals/features/users/user/model"
	helper "newgate_backend/internals/helpers"
)

// ========================== REGISTER ==========================
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	hash, err := HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(body.UserName),
		Email:    strings.ToLower(strings.TrimSpace(body.Email)),
		Password: hash,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		log.Println("[ERROR] register:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Account created", dto.ToUserDTO(user))
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(&body); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	ident := strings.TrimSpace(body.Identifier)
	var user userModel.UserModel
	err := db.Where("email = ? OR user_name = ?", strings.ToLower(ident), ident).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !CheckPassword(user.Password, body.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account has been deactivated")
	}

	pair, err := issueTokenPair(db, c, user)
	if err != nil {
		log.Println("[ERROR] login issue tokens:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	return helper.JsonOK(c, "Login successful", pair)
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout
// Blacklists the presented access token and revokes the caller's refresh
// tokens. The blacklist row expires together with the token itself.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	header := strings.TrimSpace(c.Get("Authorization"))
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing bearer token")
	}
	tokenString := strings.TrimSpace(parts[1])

	expiredAt := time.Now().UTC().Add(accessTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0).UTC()
		}
	}

	if err := db.Create(&authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke token")
	}

	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		if err := db.Delete(&authModel.RefreshTokenModel{}, "user_id = ?", userID).Error; err != nil {
			log.Println("[WARN] logout refresh cleanup:", err)
		}
	}

	return helper.JsonOK(c, "Logged out", nil)
}
