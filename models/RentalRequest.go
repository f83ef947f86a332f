package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// RentalRequest is a customer booking request. CreatedAt doubles as the
// submission timestamp used by the dashboard. CarName keeps the display name
// at submission time; legacy rows imported without a CarID are matched by it.
type RentalRequest struct {
	gorm.Model
	Name       string    `json:"name"`
	Contact    string    `json:"contact"`
	CarID      *uint     `json:"carID" gorm:"index"`
	CarName    string    `json:"carName"`
	DateFrom   time.Time `json:"dateFrom"`
	DateTo     time.Time `json:"dateTo"`
	TotalDays  int       `json:"totalDays"`
	RentalType string    `json:"rentalType" gorm:"type:varchar(10)"` // daily, weekly, monthly
	TotalPrice string    `json:"totalPrice"`                         // display string, e.g. "AED 12,500"
	Message    string    `json:"message" gorm:"type:text"`
	Status     string    `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	Urgent     bool      `json:"urgent" gorm:"default:false"`
	UserID     *uint     `json:"userID" gorm:"index"`

	Car  *Car  `json:"car,omitempty" gorm:"foreignKey:CarID"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
