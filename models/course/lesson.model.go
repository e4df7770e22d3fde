package course

import "gorm.io/gorm"

// Lesson is a single video unit belonging to exactly one course.
// OrderIndex defines display and playback sequence; a new lesson gets
// max(existing)+1, or 0 when the course has none.
type Lesson struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title"`
	VideoURL   string `json:"video_url"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}
