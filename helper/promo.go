package helper

import (
	"log"
	"time"

	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/robfig/cron/v3"
)

var promoCron *cron.Cron

// DeactivateExpiredPromoCodes flips is_active off for codes past their
// validity window. Listing endpoints still compute validity per read; the
// sweep only keeps the active/expired split current.
func DeactivateExpiredPromoCodes() {
	today := time.Now().Format("2006-01-02")
	res := database.DB.Model(&model.PromoCode{}).
		Where("is_active = ? AND valid_to < ?", true, today).
		Update("is_active", false)
	if res.Error != nil {
		log.Printf("promo code sweep failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("deactivated %d expired promo codes", res.RowsAffected)
	}
}

func StartPromoScheduler() {
	promoCron = cron.New()
	if _, err := promoCron.AddFunc("30 0 * * *", DeactivateExpiredPromoCodes); err != nil {
		log.Fatal(err)
	}
	promoCron.Start()
	log.Println("promo code scheduler started (00:30)")
}

func StopPromoScheduler() {
	if promoCron != nil {
		promoCron.Stop()
	}
}
