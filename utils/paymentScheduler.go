package utils

import (
	"log"
	"time"

	"barasho/database"
	courseModels "barasho/models/course"
	paymentModels "barasho/models/payment"

	"github.com/robfig/cron/v3"
)

// InitializePaymentScheduler sets up the payment/purchase reconciliation job.
// Payment review and enrollment live in two tables; a crash or a failed
// delete can leave them disagreeing, so a daily sweep repairs both directions.
func InitializePaymentScheduler() {
	log.Println("[PAYMENT-SCHEDULER] Initializing payment reconciliation scheduler...")

	c := cron.New()

	// Run daily at 4 AM
	c.AddFunc("0 4 * * *", func() {
		log.Println("[PAYMENT-SCHEDULER] Running daily reconciliation...")
		ReconcilePurchases()
	})

	c.Start()
	log.Println("[PAYMENT-SCHEDULER] Payment scheduler started - runs daily at 4 AM")
}

// ReconcilePurchases repairs divergence between payments and purchases:
// approved payments get their missing purchase rows, and purchases whose
// pair ended up cancelled (with no approved payment and a paid course)
// are removed.
func ReconcilePurchases() {
	db := database.Database.Db

	// Approved payments without a purchase row
	var approved []paymentModels.Payment
	if err := db.Where("status = ?", paymentModels.StatusApproved).Find(&approved).Error; err != nil {
		log.Printf("[PAYMENT-SCHEDULER] Error fetching approved payments: %v", err)
		return
	}

	created := 0
	for _, p := range approved {
		var purchase courseModels.Purchase
		err := db.Where("user_id = ? AND course_id = ?", p.UserID, p.CourseID).First(&purchase).Error
		if err == nil {
			continue
		}
		if err := db.Create(&courseModels.Purchase{UserID: p.UserID, CourseID: p.CourseID}).Error; err != nil {
			log.Printf("[PAYMENT-SCHEDULER] Error creating purchase for payment %d: %v", p.ID, err)
			continue
		}
		created++
	}

	// Cancelled payments whose purchase row survived a failed delete
	var cancelled []paymentModels.Payment
	if err := db.Where("status = ?", paymentModels.StatusCancelled).Find(&cancelled).Error; err != nil {
		log.Printf("[PAYMENT-SCHEDULER] Error fetching cancelled payments: %v", err)
		return
	}

	removed := 0
	for _, p := range cancelled {
		// An approved payment for the same pair wins over the cancelled one
		var stillApproved paymentModels.Payment
		if err := db.Where("user_id = ? AND course_id = ? AND status = ?",
			p.UserID, p.CourseID, paymentModels.StatusApproved).First(&stillApproved).Error; err == nil {
			continue
		}

		// Free-course enrollments never depend on payments
		var course courseModels.Course
		if err := db.Where("id = ?", p.CourseID).First(&course).Error; err != nil || course.IsFree {
			continue
		}

		result := db.Where("user_id = ? AND course_id = ?", p.UserID, p.CourseID).
			Delete(&courseModels.Purchase{})
		if result.Error != nil {
			log.Printf("[PAYMENT-SCHEDULER] Error deleting purchase for payment %d: %v", p.ID, result.Error)
			continue
		}
		removed += int(result.RowsAffected)
	}

	log.Printf("[PAYMENT-SCHEDULER] Reconciliation done at %s: %d purchases created, %d removed",
		time.Now().Format(time.RFC3339), created, removed)
}
