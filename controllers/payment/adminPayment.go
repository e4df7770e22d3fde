package paymentController

import (
	"log"
	"time"

	"barasho/database"
	"barasho/middleware"
	courseModels "barasho/models/course"
	paymentModels "barasho/models/payment"
	"barasho/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminListPayments lists all payment claims, newest first, with course titles
func AdminListPayments(c *fiber.Ctx) error {
	db := database.Database.Db

	var payments []paymentModels.Payment
	if err := db.Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	// Attach course titles for the review table
	titles := make(map[uint]string)
	var courses []courseModels.Course
	db.Find(&courses)
	for _, course := range courses {
		titles[course.ID] = course.Title
	}

	type paymentRow struct {
		paymentModels.Payment
		CourseTitle string `json:"course_title"`
	}

	result := make([]paymentRow, len(payments))
	for i, p := range payments {
		result[i] = paymentRow{Payment: p, CourseTitle: titles[p.CourseID]}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": result,
	})
}

// AdminApprovePayment grants access: pending, rejected or cancelled claims
// all move to approved (the latter two are reactivations). The status change
// and the purchase side effect commit together.
func AdminApprovePayment(c *fiber.Ctx) error {
	return reviewPayment(c, paymentModels.StatusApproved)
}

// AdminRejectPayment marks a claim rejected, leaving enrollment untouched
func AdminRejectPayment(c *fiber.Ctx) error {
	return reviewPayment(c, paymentModels.StatusRejected)
}

// AdminCancelPayment revokes access granted by a previous approval
func AdminCancelPayment(c *fiber.Ctx) error {
	return reviewPayment(c, paymentModels.StatusCancelled)
}

// allowedTransitions guards the review state machine: reject only catches a
// pending claim, cancel only revokes an approval, approve takes pending claims
// and reactivates rejected or cancelled ones.
var allowedTransitions = map[string][]string{
	paymentModels.StatusApproved:  {paymentModels.StatusPending, paymentModels.StatusRejected, paymentModels.StatusCancelled},
	paymentModels.StatusRejected:  {paymentModels.StatusPending},
	paymentModels.StatusCancelled: {paymentModels.StatusApproved},
}

func transitionAllowed(from, to string) bool {
	for _, status := range allowedTransitions[to] {
		if status == from {
			return true
		}
	}
	return false
}

func reviewPayment(c *fiber.Ctx, newStatus string) error {
	reviewerID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	paymentID := c.Locals("paymentID").(int)
	db := database.Database.Db

	var payment paymentModels.Payment
	if err := db.Where("id = ?", paymentID).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	if !transitionAllowed(payment.Status, newStatus) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false,
			"A "+payment.Status+" payment cannot be "+newStatus+"!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		payment.Status = newStatus
		payment.ReviewedAt = &now
		payment.ReviewedBy = &reviewerID

		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		switch newStatus {
		case paymentModels.StatusApproved:
			// FirstOrCreate keeps reactivation safe when the purchase
			// row from an earlier approval still exists
			purchase := courseModels.Purchase{UserID: payment.UserID, CourseID: payment.CourseID}
			if err := tx.Where("user_id = ? AND course_id = ?", payment.UserID, payment.CourseID).
				FirstOrCreate(&purchase).Error; err != nil {
				return err
			}
		case paymentModels.StatusCancelled:
			if err := tx.Where("user_id = ? AND course_id = ?", payment.UserID, payment.CourseID).
				Delete(&courseModels.Purchase{}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Printf("Error reviewing payment %d: %v", paymentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment!", nil)
	}

	notifyReviewOutcome(payment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment "+newStatus+" successfully!", payment)
}

// notifyReviewOutcome emails the learner about the decision, best effort
func notifyReviewOutcome(payment paymentModels.Payment) {
	if payment.UserEmail == "" {
		return
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", payment.CourseID).First(&course).Error; err != nil {
		return
	}

	go func() {
		var err error
		switch payment.Status {
		case paymentModels.StatusApproved:
			err = utils.SendPaymentApprovedEmail(payment.UserEmail, course.Title)
		case paymentModels.StatusRejected:
			err = utils.SendPaymentRejectedEmail(payment.UserEmail, course.Title)
		default:
			return
		}
		if err != nil {
			log.Printf("Error sending payment review email to %s: %v", payment.UserEmail, err)
		}
	}()
}

// AdminDashboardStats summarizes the console overview tab: course count,
// unique paying users, revenue over approved payments, pending queue size.
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)

	var pendingPayments int64
	db.Model(&paymentModels.Payment{}).Where("status = ?", paymentModels.StatusPending).Count(&pendingPayments)

	var uniqueUsers int64
	db.Model(&paymentModels.Payment{}).Distinct("user_id").Count(&uniqueUsers)

	prices := make(map[uint]float64)
	var courses []courseModels.Course
	db.Find(&courses)
	for _, course := range courses {
		prices[course.ID] = course.Price
	}

	var approved []paymentModels.Payment
	db.Where("status = ?", paymentModels.StatusApproved).Find(&approved)

	totalRevenue := 0.0
	for _, p := range approved {
		totalRevenue += prices[p.CourseID]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_courses":    totalCourses,
		"total_users":      uniqueUsers,
		"total_revenue":    totalRevenue,
		"pending_payments": pendingPayments,
	})
}
