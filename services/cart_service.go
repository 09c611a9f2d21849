package services

import (
	"errors"
	"time"

	"github.com/PhamKien043/datn-sub000/entity"
	"github.com/PhamKien043/datn-sub000/repository"
	"gorm.io/gorm"
)

// Table count bounds for one booking.
const (
	TableCountMin = 1
	TableCountMax = 50
)

var (
	ErrTableCountRange = errors.New("table count out of range")
	ErrConfirmRequired = errors.New("large table count change needs confirmation")
	ErrMenuUnavailable = errors.New("menu unavailable")
	ErrBadTimeSlot     = errors.New("invalid time slot")
	ErrRoomNotFound    = errors.New("room not found")
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	MenuRepo    *repository.MenuRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, catr *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, CatalogRepo: catr}
}

func (s *CartService) Get(userID uint) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, it := range c.Items {
		subtotal += it.Total
	}
	return c, subtotal, nil
}

// AddItem puts a menu on the booking. Quantity always equals the cart's
// table count (one table eats one portion of the set menu), so the line is
// created with the current count and a snapshot of today's price.
func (s *CartService) AddItem(userID, menuID uint) error {
	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	m, err := s.MenuRepo.Get(menuID)
	if err != nil {
		return err
	}
	if m.MenuStatus.StatusName != "" && m.MenuStatus.StatusName != "Available" {
		return ErrMenuUnavailable
	}

	count := c.TableCount
	if count < TableCountMin {
		count = TableCountMin
	}
	line := &entity.CartItem{
		MenuID:    m.ID,
		Qty:       count,
		UnitPrice: m.Price,
		Total:     m.Price * int64(count),
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}

// largeChange mirrors the UI guard: a jump bigger than max(2, current)
// tables needs an explicit confirmation. Guard only, not an invariant.
func largeChange(current, next int) bool {
	diff := next - current
	if diff < 0 {
		diff = -diff
	}
	threshold := current
	if threshold < 2 {
		threshold = 2
	}
	return diff > threshold
}

// SetTableCount applies a new multiplier to every line in one transaction.
func (s *CartService) SetTableCount(userID uint, count int, confirm bool) error {
	if count < TableCountMin || count > TableCountMax {
		return ErrTableCountRange
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}
	if count == c.TableCount {
		return nil
	}
	if largeChange(c.TableCount, count) && !confirm {
		return ErrConfirmRequired
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SetTableCount(tx, c.ID, count)
	})
}

// SetBooking records the room/service/date/time-slot selection on the cart.
func (s *CartService) SetBooking(userID, roomID, serviceID uint, dateStr, timeSlot string) error {
	if timeSlot != entity.SlotMorning && timeSlot != entity.SlotAfternoon {
		return ErrBadTimeSlot
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return errors.New("invalid date, want YYYY-MM-DD")
	}

	if _, err := s.CatalogRepo.GetRoom(roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	if serviceID != 0 {
		if _, err := s.CatalogRepo.GetService(serviceID); err != nil {
			return err
		}
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SetBooking(tx, c.ID, roomID, serviceID, &date, timeSlot)
	})
}
