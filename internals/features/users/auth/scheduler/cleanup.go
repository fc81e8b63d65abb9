package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"uesquest_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler purga de token_blacklist los tokens
// vencidos hace más de TOKEN_BLACKLIST_TTL_DAYS (default: 7 días).
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Ejecutando limpieza de token_blacklist...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expiredTokens []model.TokenBlacklist
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expiredTokens).Error; err != nil {
				log.Printf("[CLEANUP ERROR] No se pudieron obtener tokens vencidos: %v", err)
			} else if len(expiredTokens) > 0 {
				if err := db.Delete(&expiredTokens).Error; err != nil {
					log.Printf("[CLEANUP ERROR] No se pudieron borrar tokens: %v", err)
				} else {
					log.Printf("[CLEANUP] %d tokens vencidos eliminados", len(expiredTokens))
				}
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
