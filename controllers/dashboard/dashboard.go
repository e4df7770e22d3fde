package dashboardController

import (
	controllers "barasho/controllers/course"
	"barasho/database"
	"barasho/middleware"
	courseModels "barasho/models/course"
	paymentModels "barasho/models/payment"

	"github.com/gofiber/fiber/v2"
)

// GetUserDashboard returns the learner's owned courses, payment history and
// summary stats. Ownership merges the purchases table with approved payments
// that have not been reconciled into it yet.
func GetUserDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var purchases []courseModels.Purchase
	if err := db.Where("user_id = ?", userID).Find(&purchases).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	var payments []paymentModels.Payment
	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	// Owned course ids: purchases plus approved payments missing a purchase
	ownedIDs := make(map[uint]bool)
	for _, p := range purchases {
		ownedIDs[p.CourseID] = true
	}
	for _, p := range payments {
		if p.Status == paymentModels.StatusApproved {
			ownedIDs[p.CourseID] = true
		}
	}

	ids := make([]uint, 0, len(ownedIDs))
	for id := range ownedIDs {
		ids = append(ids, id)
	}

	var courses []courseModels.Course
	if len(ids) > 0 {
		db.Where("id IN ? AND is_deleted = ?", ids, false).Find(&courses)
	}

	prices := make(map[uint]float64)
	for _, course := range courses {
		prices[course.ID] = course.Price
	}

	totalSpent := 0.0
	pendingCount := 0
	for _, p := range payments {
		switch p.Status {
		case paymentModels.StatusApproved:
			totalSpent += prices[p.CourseID]
		case paymentModels.StatusPending:
			pendingCount++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"courses":  courses,
		"payments": payments,
		"stats": fiber.Map{
			"total_courses":    len(courses),
			"total_spent":      totalSpent,
			"pending_payments": pendingCount,
		},
	})
}

// GetFirstLesson returns the entry point for "Start Learning": the lesson
// with the lowest order index in a course the caller owns.
func GetFirstLesson(c *fiber.Ctx) error {
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

	// Same rule as the player: purchases, approved payments and free courses
	// all count as owned
	if !controllers.HasCourseAccess(db, userID, &course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	var lesson courseModels.Lesson
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "This course has no lessons yet!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "First lesson fetched successfully!", fiber.Map{
		"lesson_id": lesson.ID,
	})
}
