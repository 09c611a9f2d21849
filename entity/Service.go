package entity

import (
	"gorm.io/gorm"
)

// Service is an event type the venue caters (wedding, conference, ...).
type Service struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Detail   string `json:"detail"`
	ImageURL string `json:"imageUrl"`

	Orders []Order `json:"-"`
}
