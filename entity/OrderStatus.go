package entity

import (
	"gorm.io/gorm"
)

// Seeded order statuses. pending → deposit_paid → confirmed →
// awaiting_balance → completed, with failed/cancelled as terminal exits.
const (
	StatusPending         = "pending"
	StatusDepositPaid     = "deposit_paid"
	StatusConfirmed       = "confirmed"
	StatusAwaitingBalance = "awaiting_balance"
	StatusCompleted       = "completed"
	StatusFailed          = "failed"
	StatusCancelled       = "cancelled"
)

type OrderStatus struct {
	gorm.Model
	StatusName string `json:"statusName"`

	Orders []Order `json:"-"`
}
