package controllers

import (
	"barasho/database"
	"barasho/middleware"
	courseModels "barasho/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetLesson serves the player view: the requested lesson, the full ordered
// lesson list, and previous/next ids from a linear index lookup. Gated by
// the course access rule.
func GetLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !HasCourseAccess(db, userID, &course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You need to purchase this course to access the lessons.", nil)
	}

	var lessons []courseModels.Lesson
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	currentIndex := -1
	for i, l := range lessons {
		if l.ID == uint(lessonID) {
			currentIndex = i
			break
		}
	}
	if currentIndex == -1 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var prevID, nextID *uint
	if currentIndex > 0 {
		prevID = &lessons[currentIndex-1].ID
	}
	if currentIndex < len(lessons)-1 {
		nextID = &lessons[currentIndex+1].ID
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"course":         course,
		"lesson":         lessons[currentIndex],
		"lessons":        lessons,
		"prev_lesson_id": prevID,
		"next_lesson_id": nextID,
	})
}
