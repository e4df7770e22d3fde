package controllers

import (
	"log"

	courseModels "barasho/models/course"
	paymentModels "barasho/models/payment"

	"gorm.io/gorm"
)

// HasCourseAccess decides whether a user may view a course's lessons.
// Free course: enroll on sight (idempotent insert, errors swallowed) and
// allow. Paid course: a purchase row or an approved payment grants access.
// Any read error counts as not-found and denies access.
func HasCourseAccess(db *gorm.DB, userID uint, course *courseModels.Course) bool {
	if course.IsFree {
		autoEnrollInFreeCourse(db, userID, course.ID)
		return true
	}

	var purchase courseModels.Purchase
	if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&purchase).Error; err == nil {
		return true
	}

	var approved paymentModels.Payment
	if err := db.Where("user_id = ? AND course_id = ? AND status = ?",
		userID, course.ID, paymentModels.StatusApproved).First(&approved).Error; err == nil {
		return true
	}

	return false
}

// autoEnrollInFreeCourse records the enrollment so the course shows up on
// the dashboard. Failure never blocks access to a free course.
func autoEnrollInFreeCourse(db *gorm.DB, userID, courseID uint) {
	var existing courseModels.Purchase
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return
	}

	if err := db.Create(&courseModels.Purchase{UserID: userID, CourseID: courseID}).Error; err != nil {
		log.Printf("Error auto-enrolling user %d in free course %d: %v", userID, courseID, err)
	}
}
