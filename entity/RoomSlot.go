package entity

import (
	"time"

	"gorm.io/gorm"
)

// Time-of-day slots a room can be booked for.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
)

// RoomSlot is one bookable (room, date, time-of-day) triple.
// The triple is unique; IsAvailable flips to false when a checkout holds it.
type RoomSlot struct {
	gorm.Model
	RoomID      uint      `gorm:"index:uniq_room_slot,unique" json:"roomId"`
	Room        Room      `json:"-"`
	SlotDate    time.Time `gorm:"index:uniq_room_slot,unique" json:"slotDate"`
	TimeSlot    string    `gorm:"size:20;index:uniq_room_slot,unique" json:"timeSlot"`
	// no default tag: gorm would omit IsAvailable=false on insert
	IsAvailable bool `json:"isAvailable"`
}

func (RoomSlot) TableName() string { return "room_slots" }
