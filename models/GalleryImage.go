package models

import "gorm.io/gorm"

type GalleryImage struct {
	gorm.Model
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	SortOrder int    `json:"sortOrder" gorm:"default:0;index"`
}
