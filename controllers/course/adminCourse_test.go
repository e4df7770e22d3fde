package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	courseModels "barasho/models/course"
	paymentModels "barasho/models/payment"
	validators "barasho/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestAdminDeleteCourseCascades(t *testing.T) {
	db := setupTestDB(t)

	course := courseModels.Course{Title: "Doomed", Price: 30}
	require.NoError(t, db.Create(&course).Error)
	keep := courseModels.Course{Title: "Kept", Price: 15}
	require.NoError(t, db.Create(&keep).Error)

	for _, c := range []courseModels.Course{course, keep} {
		require.NoError(t, db.Create(&courseModels.Lesson{CourseID: c.ID, Title: "Lesson"}).Error)
		require.NoError(t, db.Create(&courseModels.Purchase{UserID: 1, CourseID: c.ID}).Error)
		require.NoError(t, db.Create(&paymentModels.Payment{
			UserID: 1, CourseID: c.ID, PhoneNumber: "+252 61 7211084",
			Status: paymentModels.StatusApproved,
		}).Error)
	}

	app := fiber.New()
	app.Delete("/admin/course/:id", validators.CourseID(), AdminDeleteCourse)

	req := httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/admin/course/%d", course.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The course and its lessons are flagged deleted, payment and purchase
	// rows are gone
	var deleted courseModels.Course
	require.NoError(t, db.First(&deleted, course.ID).Error)
	require.True(t, deleted.IsDeleted)

	var count int64
	db.Model(&courseModels.Lesson{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&count)
	require.EqualValues(t, 0, count)
	db.Model(&paymentModels.Payment{}).Where("course_id = ?", course.ID).Count(&count)
	require.EqualValues(t, 0, count)
	db.Model(&courseModels.Purchase{}).Where("course_id = ?", course.ID).Count(&count)
	require.EqualValues(t, 0, count)

	// The other course is untouched
	db.Model(&courseModels.Course{}).Where("id = ? AND is_deleted = ?", keep.ID, false).Count(&count)
	require.EqualValues(t, 1, count)
	db.Model(&courseModels.Lesson{}).Where("course_id = ? AND is_deleted = ?", keep.ID, false).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestAdminDeleteCourseNotFound(t *testing.T) {
	setupTestDB(t)

	app := fiber.New()
	app.Delete("/admin/course/:id", validators.CourseID(), AdminDeleteCourse)

	req := httptest.NewRequest(fiber.MethodDelete, "/admin/course/999", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
