package entity

import (
	"gorm.io/gorm"
)

// Seeded voucher kinds.
const (
	VoucherFixed   = "fixed"
	VoucherPercent = "percent"
)

type VoucherType struct {
	gorm.Model
	TypeName string `json:"typeName"`

	Vouchers []Voucher `json:"-"`
}
