package models

import "gorm.io/gorm"

// Brand is a marketing entry on the public site (logo strip + catalog filter).
type Brand struct {
	gorm.Model
	Name      string `json:"name" gorm:"uniqueIndex"`
	LogoURL   string `json:"logoURL"`
	SortOrder int    `json:"sortOrder" gorm:"default:0;index"`
	IsActive  *bool  `json:"isActive" gorm:"default:true"`
}
