package entity

import (
	"gorm.io/gorm"
)

// Menu is a set menu priced per table.
type Menu struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl"`

	MenuCategoryID uint         `json:"menuCategoryId"`
	MenuCategory   MenuCategory `json:"-"`

	MenuStatusID uint       `json:"menuStatusId"`
	MenuStatus   MenuStatus `json:"-"`
}
