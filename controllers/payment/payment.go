package paymentController

import (
	"barasho/config"
	"barasho/database"
	"barasho/middleware"
	courseModels "barasho/models/course"
	paymentModels "barasho/models/payment"

	"github.com/gofiber/fiber/v2"
)

// SubmitPayment records a mobile-money payment claim for a paid course.
// The claim starts out pending and waits for manual admin review. There is
// no duplicate guard beyond the status view; the review queue absorbs
// repeated submissions.
func SubmitPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.IsFree {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This course is free, no payment is needed!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*struct {
		PhoneNumber string `json:"phone_number"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	email, _ := c.Locals("email").(string)

	payment := paymentModels.Payment{
		UserID:      userID,
		CourseID:    course.ID,
		PhoneNumber: reqData.PhoneNumber,
		UserEmail:   email,
		Status:      paymentModels.StatusPending,
	}

	if err := db.Create(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment submitted! It will be reviewed within 24 hours.", fiber.Map{
		"payment":         payment,
		"receiver_number": config.AppConfig.PaymentReceiverNumber,
	})
}

// GetPaymentStatus returns the caller's latest payment for a course, plus
// the number to send money to when no claim exists yet.
func GetPaymentStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var payment paymentModels.Payment
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("created_at desc, id desc").First(&payment).Error

	data := fiber.Map{
		"course":          course,
		"receiver_number": config.AppConfig.PaymentReceiverNumber,
	}
	if err == nil {
		data["payment"] = payment
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment status fetched successfully!", data)
}
