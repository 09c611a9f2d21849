package services

import (
	"errors"
	"time"

	"github.com/PhamKien043/datn-sub000/entity"
	"github.com/PhamKien043/datn-sub000/repository"
	"gorm.io/gorm"
)

// Sentinel errors controllers switch on.
var (
	ErrVoucherNotFound  = errors.New("voucher not found")
	ErrAlreadyCollected = errors.New("voucher already collected")
	ErrAlreadyUsed      = errors.New("voucher already used")
)

// Eligibility states and banner severities for voucher classification.
const (
	StateEligible   = "eligible"
	StateIneligible = "ineligible"
	StateUsed       = "used"

	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

type Eligibility struct {
	State    string `json:"state"`
	Cause    string `json:"cause,omitempty"`
	Severity string `json:"severity,omitempty"`
}

// EvaluateVoucher classifies one voucher for a user against a base total.
// A voucher is eligible iff it is active, the clock is inside its window,
// the base total clears the minimum, and this user has not used it yet.
func EvaluateVoucher(v *entity.Voucher, usedByUser bool, baseTotal int64, now time.Time) Eligibility {
	if usedByUser {
		return Eligibility{State: StateUsed, Cause: "already_used", Severity: SeverityWarning}
	}
	if !v.Active {
		return Eligibility{State: StateIneligible, Cause: "inactive", Severity: SeverityDanger}
	}
	if v.StartAt != nil && now.Before(*v.StartAt) {
		return Eligibility{State: StateIneligible, Cause: "not_started", Severity: SeverityDanger}
	}
	if v.EndAt != nil && now.After(*v.EndAt) {
		return Eligibility{State: StateIneligible, Cause: "expired", Severity: SeverityDanger}
	}
	if baseTotal < v.MinOrder {
		return Eligibility{State: StateIneligible, Cause: "below_min_order", Severity: SeverityInfo}
	}
	return Eligibility{State: StateEligible}
}

type VoucherService struct {
	DB   *gorm.DB
	Repo *repository.VoucherRepository
}

func NewVoucherService(db *gorm.DB, repo *repository.VoucherRepository) *VoucherService {
	return &VoucherService{DB: db, Repo: repo}
}

// VoucherView is a voucher plus its classification for the asking user.
type VoucherView struct {
	Voucher     entity.Voucher `json:"voucher"`
	Type        string         `json:"type"`
	Eligibility Eligibility    `json:"eligibility"`
}

// ListWithEligibility classifies every voucher against the user's current
// base total so the client can render eligible/ineligible/used states.
func (s *VoucherService) ListWithEligibility(userID uint, baseTotal int64) ([]VoucherView, error) {
	vouchers, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	used, err := s.Repo.UsedVoucherIDs(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]VoucherView, 0, len(vouchers))
	for i := range vouchers {
		v := vouchers[i]
		out = append(out, VoucherView{
			Voucher:     v,
			Type:        v.VoucherType.TypeName,
			Eligibility: EvaluateVoucher(&v, used[v.ID], baseTotal, now),
		})
	}
	return out, nil
}

// Collect saves a voucher to the user's wallet. The unique (user, voucher)
// index absorbs double-clicks racing each other.
func (s *VoucherService) Collect(userID, voucherID uint) error {
	if _, err := s.Repo.Get(voucherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVoucherNotFound
		}
		return err
	}

	uv := entity.UserVoucher{UserID: userID, VoucherID: voucherID}
	if err := s.Repo.CreateUserVoucher(&uv); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyCollected
		}
		return err
	}
	return nil
}

func (s *VoucherService) ListForUser(userID uint) ([]entity.UserVoucher, error) {
	return s.Repo.ListForUser(userID)
}

// Validate re-checks a specific voucher right before checkout.
func (s *VoucherService) Validate(userID, voucherID uint, baseTotal int64) (*entity.Voucher, Eligibility, error) {
	v, err := s.Repo.Get(voucherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Eligibility{}, ErrVoucherNotFound
		}
		return nil, Eligibility{}, err
	}

	used := false
	if uv, err := s.Repo.GetUserVoucher(userID, voucherID); err == nil {
		used = uv.IsUsed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Eligibility{}, err
	}

	return v, EvaluateVoucher(v, used, baseTotal, time.Now()), nil
}

// Redeem burns the voucher for this user inside the caller's transaction.
// Users who never collected the voucher get a used row created on the spot.
func (s *VoucherService) Redeem(tx *gorm.DB, userID, voucherID uint) error {
	now := time.Now()
	affected, err := s.Repo.MarkUsedGuard(tx, userID, voucherID, now)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// no unused row; either never collected or already used
	if _, err := s.Repo.GetUserVoucherTx(tx, userID, voucherID); err == nil {
		return ErrAlreadyUsed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	uv := entity.UserVoucher{UserID: userID, VoucherID: voucherID, IsUsed: true, UsedAt: &now}
	if err := tx.Create(&uv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyUsed
		}
		return err
	}
	return nil
}

// Restore un-burns a voucher after a failed gateway payment.
func (s *VoucherService) Restore(tx *gorm.DB, userID, voucherID uint) error {
	return s.Repo.UnmarkUsed(tx, userID, voucherID)
}

// ---------------- Admin CRUD ----------------

func (s *VoucherService) GetAll() ([]entity.Voucher, error) {
	return s.Repo.List()
}

func (s *VoucherService) Create(v *entity.Voucher) error {
	return s.Repo.Create(v)
}

func (s *VoucherService) Update(id uint, v *entity.Voucher) error {
	return s.Repo.Update(id, v)
}

func (s *VoucherService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
