package entities

import (
	"time"

	"gorm.io/datatypes"
)

type Itinerary struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Destination   string         `gorm:"index;not null" json:"destination"`
	StartDate     Date           `gorm:"not null" json:"start_date"`
	EndDate       Date           `gorm:"not null" json:"end_date"`
	Interests     []string       `gorm:"serializer:json;not null" json:"interests"`
	ItineraryData datatypes.JSON `gorm:"not null" json:"itinerary_data"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	// set by the repository so that every mutation moves it forward
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (Itinerary) TableName() string { return "itineraries" }
