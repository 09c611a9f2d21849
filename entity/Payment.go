package entity

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	Amount int64 `json:"amount"`

	// TxnRef is our reference sent to the gateway; GatewayRef is the
	// transaction number the gateway reports back.
	TxnRef     string     `gorm:"size:64;uniqueIndex" json:"txnRef"`
	GatewayRef string     `gorm:"size:64" json:"gatewayRef"`
	PaidAt     *time.Time `json:"paidAt,omitempty"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	PaymentMethodID uint          `json:"paymentMethodId"`
	PaymentMethod   PaymentMethod `json:"-"`

	PaymentStatusID uint          `json:"paymentStatusId"`
	PaymentStatus   PaymentStatus `json:"-"`
}
