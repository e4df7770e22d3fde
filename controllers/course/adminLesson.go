package controllers

import (
	"log"

	"barasho/database"
	"barasho/middleware"
	courseModels "barasho/models/course"
	"barasho/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NextOrderIndex returns the order index a new lesson should take:
// max existing + 1, or 0 when the course has no lessons yet.
func NextOrderIndex(db *gorm.DB, courseID uint) int {
	var last courseModels.Lesson
	err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index desc").First(&last).Error
	if err != nil {
		return 0
	}
	return last.OrderIndex + 1
}

// AdminCreateLesson adds a lesson to a course. The video can arrive as an
// uploaded file or a URL; the order index is assigned inside the insert
// transaction so concurrent adds for the same course cannot collide.
func AdminCreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title    string `json:"title" form:"title"`
		VideoURL string `json:"video_url" form:"video_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	videoURL := reqData.VideoURL
	if file, err := c.FormFile("video_file"); err == nil {
		if err := utils.ValidateUpload(file, "video/", utils.MaxVideoSize); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		storedPath, err := utils.SaveUploadedFile(file, utils.BucketLessonVideos)
		if err != nil {
			log.Printf("Error storing lesson video: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload video!", nil)
		}
		videoURL = utils.GetPublicURL(storedPath)
	}

	var lesson courseModels.Lesson
	err := db.Transaction(func(tx *gorm.DB) error {
		lesson = courseModels.Lesson{
			CourseID:   course.ID,
			Title:      reqData.Title,
			VideoURL:   videoURL,
			OrderIndex: NextOrderIndex(tx, course.ID),
		}
		return tx.Create(&lesson).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully!", lesson)
}

// AdminUpdateLesson updates a lesson's title and video reference
func AdminUpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)
	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Title    string `json:"title" form:"title"`
		VideoURL string `json:"video_url" form:"video_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		lesson.Title = reqData.Title
	}
	if reqData.VideoURL != "" {
		lesson.VideoURL = reqData.VideoURL
	}

	if file, err := c.FormFile("video_file"); err == nil {
		if err := utils.ValidateUpload(file, "video/", utils.MaxVideoSize); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		storedPath, err := utils.SaveUploadedFile(file, utils.BucketLessonVideos)
		if err != nil {
			log.Printf("Error storing lesson video: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload video!", nil)
		}
		lesson.VideoURL = utils.GetPublicURL(storedPath)
	}

	if err := db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// AdminDeleteLesson removes a single lesson
func AdminDeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)
	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	lesson.IsDeleted = true
	if err := db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// AdminListLessons lists a course's lessons in playback order
func AdminListLessons(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []courseModels.Lesson
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"course":  course,
		"lessons": lessons,
	})
}
