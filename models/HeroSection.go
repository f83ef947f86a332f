package models

import "gorm.io/gorm"

// HeroSection holds the landing-page hero content. The public site renders the
// active one; admins may stage several and switch.
type HeroSection struct {
	gorm.Model
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline" gorm:"type:text"`
	ImageURL    string `json:"imageURL"`
	CTALabel    string `json:"ctaLabel"`
	CTALink     string `json:"ctaLink"`
	IsActive    *bool  `json:"isActive" gorm:"default:false;index"`
}
