package models

import "gorm.io/gorm"

type FAQ struct {
	gorm.Model
	Question  string `json:"question" gorm:"type:text"`
	Answer    string `json:"answer" gorm:"type:text"`
	SortOrder int    `json:"sortOrder" gorm:"default:0;index"`
	Published *bool  `json:"published" gorm:"default:true;index"`
}
