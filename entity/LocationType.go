package entity

import (
	"gorm.io/gorm"
)

type LocationType struct {
	gorm.Model
	TypeName string `json:"typeName"`

	Rooms []Room `json:"-"`
}
