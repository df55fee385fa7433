package entity

import (
	"gorm.io/gorm"
)

type GalleryItem struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Picture     string `json:"image"`
}
