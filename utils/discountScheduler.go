package utils

import (
	"log"
	"time"

	"github.com/SacredMindInfotech/SacredMind-sub001/database"
	"github.com/SacredMindInfotech/SacredMind-sub001/models"

	"github.com/robfig/cron/v3"
)

// InitializeDiscountScheduler sets up the discount token expiry scheduler
func InitializeDiscountScheduler() {
	log.Println("[DISCOUNT-SCHEDULER] Initializing discount scheduler...")

	c := cron.New()

	// Run daily at midnight to deactivate expired tokens. Pricing treats an
	// expired token as invalid either way; this keeps the admin listing tidy.
	c.AddFunc("0 0 * * *", func() {
		log.Println("[DISCOUNT-SCHEDULER] Running daily token expiry check...")
		ExpireDiscountTokens()
	})

	c.Start()
	log.Println("[DISCOUNT-SCHEDULER] Discount scheduler started - runs daily at midnight")
}

// ExpireDiscountTokens marks expired tokens as inactive
func ExpireDiscountTokens() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.DiscountToken{}).
		Where("is_active = ? AND is_deleted = ? AND expires_at < ?", true, false, now).
		Update("is_active", false)

	if result.Error != nil {
		log.Printf("[DISCOUNT-SCHEDULER] Error expiring tokens: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[DISCOUNT-SCHEDULER] Deactivated %d expired tokens", result.RowsAffected)
	}
}
