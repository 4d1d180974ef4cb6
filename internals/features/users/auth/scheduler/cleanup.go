package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "newgate_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler purges expired blacklist and refresh-token
// rows hourly so the tables stay small.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now().UTC()
			if err := db.Delete(&authModel.TokenBlacklistModel{}, "expired_at < ?", now).Error; err != nil {
				log.Printf("[WARN] blacklist cleanup: %v", err)
			}
			if err := db.Delete(&authModel.RefreshTokenModel{}, "expires_at < ?", now).Error; err != nil {
				log.Printf("[WARN] refresh token cleanup: %v", err)
			}
		}
	}()
}
