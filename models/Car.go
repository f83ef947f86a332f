package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DateRange is a closed [From, To] interval of calendar days ("2006-01-02").
// A car cannot be rented on any day inside one of its ranges.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Car struct {
	gorm.Model
	Brand        string `json:"brand" gorm:"index"`
	CarModel     string `json:"model" gorm:"column:car_model"`
	Title        string `json:"title"`
	Description  string `json:"description" gorm:"type:text"`
	Category     string `json:"category" gorm:"index"` // sports, suv, sedan, convertible
	PriceDaily   string `json:"priceDaily"`            // numeric-ish display strings, e.g. "1,200"
	PriceWeekly  string `json:"priceWeekly"`
	PriceMonthly string `json:"priceMonthly"`
	Currency     string `json:"currency" gorm:"type:varchar(10);default:'AED'"`
	Seats        int    `json:"seats"`
	Horsepower   int    `json:"horsepower"`
	Color        string `json:"color"`
	Featured     bool   `json:"featured" gorm:"default:false"`

	Images            string         `json:"images"` // JSON array of URLs
	UnavailableRanges datatypes.JSON `json:"unavailableRanges" gorm:"type:jsonb"`

	// Cars are deactivated, never deleted.
	IsActive *bool `json:"isActive" gorm:"default:true;index"`

	Requests []RentalRequest `json:"requests,omitempty" gorm:"foreignKey:CarID"`
}

// UnavailableDateRanges decodes the stored ranges list. Malformed JSON yields an
// empty list; entries missing a bound are kept here and skipped by the date
// helpers.
func (c *Car) UnavailableDateRanges() []DateRange {
	var ranges []DateRange
	if len(c.UnavailableRanges) > 0 {
		json.Unmarshal(c.UnavailableRanges, &ranges)
	}
	return ranges
}

// SetUnavailableDateRanges re-encodes the ranges list for storage.
func (c *Car) SetUnavailableDateRanges(ranges []DateRange) {
	raw, err := json.Marshal(ranges)
	if err != nil {
		return
	}
	c.UnavailableRanges = datatypes.JSON(raw)
}

// Custom JSON marshaling to convert the Images string to an array
func (c *Car) MarshalJSON() ([]byte, error) {
	type Alias Car
	aux := &struct {
		Images   []string        `json:"images"`
		Requests []RentalRequest `json:"requests,omitempty"`
		*Alias
	}{
		Images: []string{},
		Alias:  (*Alias)(c),
	}

	if c.Images != "" {
		var images []string
		if err := json.Unmarshal([]byte(c.Images), &images); err == nil {
			aux.Images = images
		}
	}

	// Requests are never embedded in car payloads to avoid circular references
	aux.Requests = nil

	return json.Marshal(aux)
}
