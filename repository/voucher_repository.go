package repository

import (
	"time"

	"github.com/PhamKien043/datn-sub000/entity"
	"gorm.io/gorm"
)

type VoucherRepository struct{ DB *gorm.DB }

func NewVoucherRepository(db *gorm.DB) *VoucherRepository { return &VoucherRepository{DB: db} }

func (r *VoucherRepository) List() ([]entity.Voucher, error) {
	var vouchers []entity.Voucher
	err := r.DB.Preload("VoucherType").Order("id DESC").Find(&vouchers).Error
	return vouchers, err
}

func (r *VoucherRepository) Get(id uint) (*entity.Voucher, error) {
	var v entity.Voucher
	if err := r.DB.Preload("VoucherType").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VoucherRepository) Create(v *entity.Voucher) error {
	return r.DB.Create(v).Error
}

func (r *VoucherRepository) Update(id uint, v *entity.Voucher) error {
	var existing entity.Voucher
	if err := r.DB.First(&existing, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&existing).
		Select("Code", "Title", "Detail", "Value", "MinOrder", "StartAt", "EndAt", "Active", "VoucherTypeID").
		Updates(v).Error
}

func (r *VoucherRepository) Delete(id uint) error {
	// hard-delete user rows first in case cascade is not active
	if err := r.DB.Unscoped().
		Where("voucher_id = ?", id).
		Delete(&entity.UserVoucher{}).Error; err != nil {
		return err
	}
	return r.DB.Unscoped().Delete(&entity.Voucher{}, id).Error
}

// ---------------- Per-user rows ----------------

func (r *VoucherRepository) CreateUserVoucher(uv *entity.UserVoucher) error {
	return r.DB.Create(uv).Error
}

func (r *VoucherRepository) GetUserVoucher(userID, voucherID uint) (*entity.UserVoucher, error) {
	return getUserVoucher(r.DB, userID, voucherID)
}

// GetUserVoucherTx is the same lookup inside the caller's transaction.
func (r *VoucherRepository) GetUserVoucherTx(tx *gorm.DB, userID, voucherID uint) (*entity.UserVoucher, error) {
	return getUserVoucher(tx, userID, voucherID)
}

func getUserVoucher(db *gorm.DB, userID, voucherID uint) (*entity.UserVoucher, error) {
	var uv entity.UserVoucher
	err := db.Where("user_id = ? AND voucher_id = ?", userID, voucherID).First(&uv).Error
	if err != nil {
		return nil, err
	}
	return &uv, nil
}

func (r *VoucherRepository) ListForUser(userID uint) ([]entity.UserVoucher, error) {
	var rows []entity.UserVoucher
	err := r.DB.
		Preload("Voucher").
		Preload("Voucher.VoucherType").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

// UsedVoucherIDs reports which vouchers this user has already burned.
func (r *VoucherRepository) UsedVoucherIDs(userID uint) (map[uint]bool, error) {
	var ids []uint
	err := r.DB.Model(&entity.UserVoucher{}).
		Where("user_id = ? AND is_used = ?", userID, true).
		Pluck("voucher_id", &ids).Error
	if err != nil {
		return nil, err
	}
	used := make(map[uint]bool, len(ids))
	for _, id := range ids {
		used[id] = true
	}
	return used, nil
}

// MarkUsedGuard flips is_used false→true for this user's row. Rows affected
// 0 means the voucher was already used (or never collected).
func (r *VoucherRepository) MarkUsedGuard(tx *gorm.DB, userID, voucherID uint, at time.Time) (int64, error) {
	res := tx.Model(&entity.UserVoucher{}).
		Where("user_id = ? AND voucher_id = ? AND is_used = ?", userID, voucherID, false).
		Updates(map[string]any{"is_used": true, "used_at": at})
	return res.RowsAffected, res.Error
}

// UnmarkUsed returns the voucher to the user after a failed payment.
func (r *VoucherRepository) UnmarkUsed(tx *gorm.DB, userID, voucherID uint) error {
	return tx.Model(&entity.UserVoucher{}).
		Where("user_id = ? AND voucher_id = ?", userID, voucherID).
		Updates(map[string]any{"is_used": false, "used_at": nil}).Error
}
