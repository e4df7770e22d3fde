package course

import "gorm.io/gorm"

// Course represents a purchasable or free unit of content composed of ordered lessons
type Course struct {
	gorm.Model
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" gorm:"default:0"` // USD
	IsFree       bool    `json:"is_free" gorm:"default:false"`
	ThumbnailURL string  `json:"thumbnail_url"`
	IsDeleted    bool    `gorm:"default:false"`
}
