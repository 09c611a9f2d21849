package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Subtotal      int64 `json:"subtotal"`
	RoomFee       int64 `json:"roomFee"`
	TableFee      int64 `json:"tableFee"`
	Discount      int64 `json:"discount"`
	Total         int64 `json:"total"`
	DepositAmount int64 `json:"depositAmount"`
	BalanceAmount int64 `json:"balanceAmount"`
	TableCount    int   `json:"tableCount"`

	EventDate time.Time `json:"eventDate"`
	TimeSlot  string    `gorm:"size:20" json:"timeSlot"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for admin detail

	RoomID uint `json:"roomId"`
	Room   Room `json:"-"`

	ServiceID uint    `json:"serviceId"`
	Service   Service `json:"-"`

	RoomSlotID uint     `json:"roomSlotId"`
	RoomSlot   RoomSlot `json:"-"`

	VoucherID *uint    `json:"voucherId,omitempty"`
	Voucher   *Voucher `json:"-"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	OrderItems []OrderItem `json:"-"` // preload on detail
	Payments   []Payment   `json:"-"`
}
