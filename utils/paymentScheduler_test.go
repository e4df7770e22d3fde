package utils

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
		&courseModels.Purchase{},
		&paymentModels.Payment{},
	))

	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() {
		database.Database = database.DbInstance{}
	})

	return db
}

func TestReconcileCreatesMissingPurchases(t *testing.T) {
	db := setupTestDB(t)

	course := courseModels.Course{Title: "Paid", Price: 15}
	require.NoError(t, db.Create(&course).Error)

	// Approved payment with no matching purchase row
	require.NoError(t, db.Create(&paymentModels.Payment{
		UserID: 1, CourseID: course.ID, PhoneNumber: "0617211084",
		Status: paymentModels.StatusApproved,
	}).Error)

	ReconcilePurchases()

	var count int64
	db.Model(&courseModels.Purchase{}).Where("user_id = ? AND course_id = ?", 1, course.ID).Count(&count)
	require.EqualValues(t, 1, count)

	// Second run must not duplicate
	ReconcilePurchases()
	db.Model(&courseModels.Purchase{}).Where("user_id = ? AND course_id = ?", 1, course.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestReconcileRemovesDanglingPurchases(t *testing.T) {
	db := setupTestDB(t)

	course := courseModels.Course{Title: "Paid", Price: 15}
	require.NoError(t, db.Create(&course).Error)

	require.NoError(t, db.Create(&paymentModels.Payment{
		UserID: 2, CourseID: course.ID, PhoneNumber: "0617211084",
		Status: paymentModels.StatusCancelled,
	}).Error)
	require.NoError(t, db.Create(&courseModels.Purchase{UserID: 2, CourseID: course.ID}).Error)

	ReconcilePurchases()

	var count int64
	db.Model(&courseModels.Purchase{}).Where("user_id = ? AND course_id = ?", 2, course.ID).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestReconcileKeepsPurchaseWhenReapproved(t *testing.T) {
	db := setupTestDB(t)

	course := courseModels.Course{Title: "Paid", Price: 15}
	require.NoError(t, db.Create(&course).Error)

	// An old cancelled claim next to a newer approved one for the same pair
	require.NoError(t, db.Create(&paymentModels.Payment{
		UserID: 3, CourseID: course.ID, PhoneNumber: "0617211084",
		Status: paymentModels.StatusCancelled,
	}).Error)
	require.NoError(t, db.Create(&paymentModels.Payment{
		UserID: 3, CourseID: course.ID, PhoneNumber: "0617211084",
		Status: paymentModels.StatusApproved,
	}).Error)

	ReconcilePurchases()

	var count int64
	db.Model(&courseModels.Purchase{}).Where("user_id = ? AND course_id = ?", 3, course.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestReconcileSparesFreeCourseEnrollments(t *testing.T) {
	db := setupTestDB(t)

	course := courseModels.Course{Title: "Free", IsFree: true}
	require.NoError(t, db.Create(&course).Error)

	// Stray cancelled claim against a free course must not revoke enrollment
	require.NoError(t, db.Create(&paymentModels.Payment{
		UserID: 4, CourseID: course.ID, PhoneNumber: "0617211084",
		Status: paymentModels.StatusCancelled,
	}).Error)
	require.NoError(t, db.Create(&courseModels.Purchase{UserID: 4, CourseID: course.ID}).Error)

	ReconcilePurchases()

	var count int64
	db.Model(&courseModels.Purchase{}).Where("user_id = ? AND course_id = ?", 4, course.ID).Count(&count)
	require.EqualValues(t, 1, count)
}
