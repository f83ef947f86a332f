package models

import "gorm.io/gorm"

// ContactInfo is a singleton row edited from the back office and rendered on
// the public contact page and footer.
type ContactInfo struct {
	gorm.Model
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"`
	Email     string `json:"email"`
	Address   string `json:"address" gorm:"type:text"`
	MapLink   string `json:"mapLink"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}
