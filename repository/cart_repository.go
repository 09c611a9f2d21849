package repository

import (
	"errors"
	"time"

	"github.com/PhamKien043/datn-sub000/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart, or an empty one (not persisted)
// so callers can always render something.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Menu").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID, TableCount: 1}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, TableCount: 1}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem adds a menu line; a booking keeps one row per menu, so adding
// an existing menu just refreshes the snapshot price.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_id = ?", cartID, row.MenuID).First(&exist).Error
	if err == nil {
		exist.UnitPrice = row.UnitPrice
		exist.Qty = row.Qty
		exist.Total = row.UnitPrice * int64(row.Qty)
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	return tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error
}

// SetTableCount applies the multiplier to every line in one statement.
func (r *CartRepository) SetTableCount(tx *gorm.DB, cartID uint, count int) error {
	if err := tx.Model(&entity.Cart{}).
		Where("id = ?", cartID).
		Update("table_count", count).Error; err != nil {
		return err
	}
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?, total = unit_price * ?
		 WHERE cart_id = ?
	`, count, count, cartID).Error
}

// SetBooking stores the room/service/date/time-slot selection.
func (r *CartRepository) SetBooking(tx *gorm.DB, cartID, roomID, serviceID uint, date *time.Time, timeSlot string) error {
	return tx.Model(&entity.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]any{
			"room_id":    roomID,
			"service_id": serviceID,
			"event_date": date,
			"time_slot":  timeSlot,
		}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	// reset the booking selection so the cart is ready for a new event
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
		Updates(map[string]any{
			"room_id":     0,
			"service_id":  0,
			"event_date":  nil,
			"time_slot":   "",
			"table_count": 1,
		}).Error
}
