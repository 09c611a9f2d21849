package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	CategoryName string `json:"categoryName"`

	Menus []Menu `json:"-"`
}
