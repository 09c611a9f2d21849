package entity

import (
	"time"

	"gorm.io/gorm"
)

// UserVoucher is one user's copy of a voucher. The (user, voucher) pair is
// unique so a voucher can be redeemed at most once per user.
type UserVoucher struct {
	gorm.Model
	VoucherID uint    `gorm:"index:uniq_user_voucher,unique" json:"voucherId"`
	Voucher   Voucher `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"voucher"`

	UserID uint `gorm:"index:uniq_user_voucher,unique" json:"userId"`
	User   User `json:"-"`

	IsUsed bool       `json:"isUsed"`
	UsedAt *time.Time `json:"usedAt,omitempty"`
}

func (UserVoucher) TableName() string { return "user_vouchers" }
