package controllers

import (
	"log"

	"barasho/database"
	"barasho/middleware"
	courseModels "barasho/models/course"
	paymentModels "barasho/models/payment"
	"barasho/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCreateCourse creates a new course. The thumbnail can arrive as an
// uploaded file or as a plain URL; an uploaded file wins over the URL field.
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title        string  `json:"title" form:"title"`
		Description  string  `json:"description" form:"description"`
		Price        float64 `json:"price" form:"price"`
		IsFree       bool    `json:"is_free" form:"is_free"`
		ThumbnailURL string  `json:"thumbnail_url" form:"thumbnail_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	thumbnailURL := reqData.ThumbnailURL
	if file, err := c.FormFile("thumbnail_file"); err == nil {
		if err := utils.ValidateUpload(file, "image/", utils.MaxThumbnailSize); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		storedPath, err := utils.SaveUploadedFile(file, utils.BucketCourseThumbnails)
		if err != nil {
			log.Printf("Error storing thumbnail: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload thumbnail!", nil)
		}
		thumbnailURL = utils.GetPublicURL(storedPath)
	}

	price := reqData.Price
	if reqData.IsFree {
		price = 0
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Price:        price,
		IsFree:       reqData.IsFree,
		ThumbnailURL: thumbnailURL,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title        string   `json:"title" form:"title"`
		Description  string   `json:"description" form:"description"`
		Price        *float64 `json:"price" form:"price"`
		IsFree       *bool    `json:"is_free" form:"is_free"`
		ThumbnailURL string   `json:"thumbnail_url" form:"thumbnail_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.IsFree != nil {
		course.IsFree = *reqData.IsFree
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}

	if file, err := c.FormFile("thumbnail_file"); err == nil {
		if err := utils.ValidateUpload(file, "image/", utils.MaxThumbnailSize); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		storedPath, err := utils.SaveUploadedFile(file, utils.BucketCourseThumbnails)
		if err != nil {
			log.Printf("Error storing thumbnail: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload thumbnail!", nil)
		}
		course.ThumbnailURL = utils.GetPublicURL(storedPath)
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse removes a course and all dependent rows. The course and
// its lessons are flagged deleted, payment and purchase rows are removed; the
// cascade runs in one transaction and uploaded media objects stay in storage.
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&courseModels.Lesson{}).Where("course_id = ?", courseID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&paymentModels.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&courseModels.Purchase{}).Error; err != nil {
			return err
		}
		course.IsDeleted = true
		return tx.Save(&course).Error
	})
	if err != nil {
		log.Printf("Error deleting course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists all courses for the admin console
func AdminGetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}
