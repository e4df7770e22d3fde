package controllers

import (
	"testing"

	"barasho/database"
	courseModels "barasho/models/course"
	paymentModels "barasho/models/payment"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&courseModels.Course{},
		&courseModels.Lesson{},
		&courseModels.Purchase{},
		&paymentModels.Payment{},
	))

	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() {
		database.Database = database.DbInstance{}
	})

	return db
}

func TestHasCourseAccessFreeCourse(t *testing.T) {
	db := setupTestDB(t)

	course := courseModels.Course{Title: "Free course", IsFree: true}
	require.NoError(t, db.Create(&course).Error)

	// No payment row exists, access is still granted
	require.True(t, HasCourseAccess(db, 1, &course))

	// The viewer got auto-enrolled
	var purchase courseModels.Purchase
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", 1, course.ID).First(&purchase).Error)

	// A second visit stays enrolled exactly once
	require.True(t, HasCourseAccess(db, 1, &course))
	var count int64
	db.Model(&courseModels.Purchase{}).Where("user_id = ? AND course_id = ?", 1, course.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestHasCourseAccessPaidCourse(t *testing.T) {
	db := setupTestDB(t)

	course := courseModels.Course{Title: "Paid course", Price: 25}
	require.NoError(t, db.Create(&course).Error)

	// No purchase, no payment
	require.False(t, HasCourseAccess(db, 1, &course))

	// Purchase row grants access
	require.NoError(t, db.Create(&courseModels.Purchase{UserID: 1, CourseID: course.ID}).Error)
	require.True(t, HasCourseAccess(db, 1, &course))

	// Approved payment grants access without a purchase row
	require.NoError(t, db.Create(&paymentModels.Payment{
		UserID: 2, CourseID: course.ID, PhoneNumber: "+252 61 7211084",
		Status: paymentModels.StatusApproved,
	}).Error)
	require.True(t, HasCourseAccess(db, 2, &course))

	// Pending or rejected payments do not
	require.NoError(t, db.Create(&paymentModels.Payment{
		UserID: 3, CourseID: course.ID, PhoneNumber: "+252 61 7211084",
		Status: paymentModels.StatusPending,
	}).Error)
	require.False(t, HasCourseAccess(db, 3, &course))
}

func TestHasCourseAccessOtherUsersDoNotLeak(t *testing.T) {
	db := setupTestDB(t)

	course := courseModels.Course{Title: "Paid course", Price: 10}
	require.NoError(t, db.Create(&course).Error)

	require.NoError(t, db.Create(&courseModels.Purchase{UserID: 1, CourseID: course.ID}).Error)

	require.True(t, HasCourseAccess(db, 1, &course))
	require.False(t, HasCourseAccess(db, 2, &course))
}
