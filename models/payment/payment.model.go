package payment

import (
	"time"

	"gorm.io/gorm"
)

// Payment status lifecycle: pending -> approved | rejected,
// approved -> cancelled, and rejected/cancelled -> approved (reactivate).
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// Payment is a manually-reviewed mobile-money payment claim submitted by a learner
type Payment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"index;not null"`
	CourseID    uint       `json:"course_id" gorm:"index;not null"`
	PhoneNumber string     `json:"phone_number" gorm:"not null"`
	UserEmail   string     `json:"user_email"`
	Status      string     `json:"status" gorm:"default:'pending';index"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	ReviewedBy  *uint      `json:"reviewed_by"`
}
