package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	courseModels "barasho/models/course"
	validators "barasho/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestNextOrderIndex(t *testing.T) {
	db := setupTestDB(t)

	course := courseModels.Course{Title: "Course"}
	require.NoError(t, db.Create(&course).Error)

	// First lesson of a course starts at 0
	require.Equal(t, 0, NextOrderIndex(db, course.ID))

	require.NoError(t, db.Create(&courseModels.Lesson{CourseID: course.ID, Title: "One", OrderIndex: 0}).Error)
	require.Equal(t, 1, NextOrderIndex(db, course.ID))

	// Follows the max, not the count
	require.NoError(t, db.Create(&courseModels.Lesson{CourseID: course.ID, Title: "Late", OrderIndex: 7}).Error)
	require.Equal(t, 8, NextOrderIndex(db, course.ID))

	// Another course is unaffected
	other := courseModels.Course{Title: "Other"}
	require.NoError(t, db.Create(&other).Error)
	require.Equal(t, 0, NextOrderIndex(db, other.ID))
}

func TestLessonOrdering(t *testing.T) {
	db := setupTestDB(t)

	course := courseModels.Course{Title: "Course"}
	require.NoError(t, db.Create(&course).Error)

	titles := []string{"Intro", "Basics", "Advanced"}
	for _, title := range titles {
		lesson := courseModels.Lesson{
			CourseID:   course.ID,
			Title:      title,
			OrderIndex: NextOrderIndex(db, course.ID),
		}
		require.NoError(t, db.Create(&lesson).Error)
	}

	var lessons []courseModels.Lesson
	require.NoError(t, db.Where("course_id = ?", course.ID).Order("order_index asc").Find(&lessons).Error)

	require.Len(t, lessons, 3)
	for i, lesson := range lessons {
		require.Equal(t, titles[i], lesson.Title)
		require.Equal(t, i, lesson.OrderIndex)
	}
}

func TestAdminDeleteLessonFlagsRow(t *testing.T) {
	db := setupTestDB(t)

	course := courseModels.Course{Title: "Course"}
	require.NoError(t, db.Create(&course).Error)
	lesson := courseModels.Lesson{CourseID: course.ID, Title: "Doomed", OrderIndex: 0}
	require.NoError(t, db.Create(&lesson).Error)

	app := fiber.New()
	app.Delete("/admin/lesson/:id", validators.LessonID(), AdminDeleteLesson)

	req := httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/admin/lesson/%d", lesson.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var flagged courseModels.Lesson
	require.NoError(t, db.First(&flagged, lesson.ID).Error)
	require.True(t, flagged.IsDeleted)

	// Deleted lessons stop counting toward ordering
	require.Equal(t, 0, NextOrderIndex(db, course.ID))

	// Deleting it again is a 404
	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/admin/lesson/%d", lesson.ID), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
