package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email" gorm:"uniqueIndex"`
	PhoneNumber         string `json:"phoneNumber"`
	Password            string `json:"password"`
	AvatarURL           string `json:"avatarURL"`
	AllowsNotifications *bool  `json:"allowsNotifications"`
	Role                string `json:"role" gorm:"type:varchar(20);default:user;index"` // user, admin, super_admin
}

// Custom JSON marshaling so the password hash never leaves the server
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		Password string `json:"password,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(u),
	}
	aux.Password = ""
	return json.Marshal(aux)
}
