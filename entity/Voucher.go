package entity

import (
	"time"

	"gorm.io/gorm"
)

type Voucher struct {
	gorm.Model
	Code     string     `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Title    string     `json:"title"`
	Detail   string     `json:"detail"`
	Value    int64      `json:"value"`
	MinOrder int64      `json:"minOrder"`
	StartAt  *time.Time `json:"startAt,omitempty"`
	EndAt    *time.Time `json:"endAt,omitempty"`
	// no default tag: gorm would omit Active=false on insert
	Active bool `json:"active"`

	VoucherTypeID uint        `json:"voucherTypeId"`
	VoucherType   VoucherType `json:"-"` // preload when classifying/discounting

	UserVouchers []UserVoucher `json:"-"`
}
