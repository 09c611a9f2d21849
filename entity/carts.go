package entity

import (
	"time"

	"gorm.io/gorm"
)

// Cart carries the menu lines plus the booking selection (room, service,
// date, time slot) and the table count that multiplies every line.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	RoomID    uint `json:"roomId"`
	ServiceID uint `json:"serviceId"`

	EventDate  *time.Time `json:"eventDate,omitempty"`
	TimeSlot   string     `gorm:"size:20" json:"timeSlot"`
	TableCount int        `gorm:"default:1" json:"tableCount"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
