package controllers

import (
	"barasho/database"
	"barasho/middleware"
	courseModels "barasho/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the catalog with per-course lesson counts. Public.
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type courseWithCount struct {
		courseModels.Course
		LessonCount int64 `json:"lesson_count"`
	}

	result := make([]courseWithCount, len(courses))
	for i, course := range courses {
		var count int64
		db.Model(&courseModels.Lesson{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&count)
		result[i] = courseWithCount{Course: course, LessonCount: count}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": result,
	})
}

// GetCourseDetails returns a course with its ordered lessons and, for an
// authenticated caller, whether the lessons are unlocked.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []courseModels.Lesson
	db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&lessons)

	hasAccess := false
	if userID, ok := c.Locals("userId").(uint); ok {
		hasAccess = HasCourseAccess(db, userID, &course)
	}

	// Locked lessons keep their titles visible but not their video URLs
	if !hasAccess {
		for i := range lessons {
			lessons[i].VideoURL = ""
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":     course,
		"lessons":    lessons,
		"has_access": hasAccess,
	})
}
