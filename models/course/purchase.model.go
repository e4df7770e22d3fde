package course

import "time"

// Purchase is an enrollment record granting a user access to a course's lessons.
// Created automatically for free courses, or when an admin approves a payment;
// deleted for real (no soft-delete column) when an approved payment is
// cancelled, so a later re-approval can recreate the pair.
type Purchase struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_purchase_user_course;not null"`
	CourseID  uint      `json:"course_id" gorm:"uniqueIndex:idx_purchase_user_course;not null"`
	CreatedAt time.Time `json:"created_at"`
}
