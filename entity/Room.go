package entity

import (
	"gorm.io/gorm"
)

// Room is a bookable event space. Price is a fixed fee per booking,
// TableFee is charged per table on top of it. All money in VND.
type Room struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price"`
	Capacity int    `json:"capacity"`
	TableFee int64  `json:"tableFee"`
	ImageURL string `json:"imageUrl"`

	LocationTypeID uint         `json:"locationTypeId"`
	LocationType   LocationType `json:"-"`

	Slots  []RoomSlot `json:"-"`
	Orders []Order    `json:"-"`
}
