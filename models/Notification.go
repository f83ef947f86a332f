package models

import "gorm.io/gorm"

// Notification is an in-app inbox row; there is no push delivery.
type Notification struct {
	gorm.Model
	UserID  uint   `json:"userID" gorm:"index"`
	Title   string `json:"title"`
	Message string `json:"message" gorm:"type:text"`
	Type    string `json:"type" gorm:"type:varchar(40);index"` // request_submitted, request_status
	RefID   uint   `json:"refID"`
	RefType string `json:"refType" gorm:"type:varchar(40)"`
	IsRead  bool   `json:"isRead" gorm:"default:false;index"`
}
