package repository

import (
	"time"

	"github.com/PhamKien043/datn-sub000/entity"
	"gorm.io/gorm"
)

type SlotRepository struct{ DB *gorm.DB }

func NewSlotRepository(db *gorm.DB) *SlotRepository { return &SlotRepository{DB: db} }

func (r *SlotRepository) Create(slot *entity.RoomSlot) error {
	return r.DB.Create(slot).Error
}

func (r *SlotRepository) Get(id uint) (*entity.RoomSlot, error) {
	var s entity.RoomSlot
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListForRoom returns slots in [from, to]; onlyAvailable narrows to the
// ones a client may still pick.
func (r *SlotRepository) ListForRoom(roomID uint, from, to time.Time, onlyAvailable bool) ([]entity.RoomSlot, error) {
	var slots []entity.RoomSlot
	db := r.DB.Where("room_id = ? AND slot_date >= ? AND slot_date <= ?", roomID, from, to)
	if onlyAvailable {
		db = db.Where("is_available = ?", true)
	}
	err := db.Order("slot_date, time_slot").Find(&slots).Error
	return slots, err
}

// Find resolves a (room, date, time-of-day) triple to its slot row.
func (r *SlotRepository) Find(roomID uint, date time.Time, timeSlot string) (*entity.RoomSlot, error) {
	var s entity.RoomSlot
	err := r.DB.Where("room_id = ? AND slot_date = ? AND time_slot = ?", roomID, date, timeSlot).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SlotRepository) Update(id uint, slot *entity.RoomSlot) error {
	var existing entity.RoomSlot
	if err := r.DB.First(&existing, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&existing).
		Select("SlotDate", "TimeSlot", "IsAvailable").
		Updates(slot).Error
}

func (r *SlotRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.RoomSlot{}, id).Error
}

// Hold flips an available slot to unavailable. Rows affected is the
// compare-and-swap result: 0 means someone else took it first.
func (r *SlotRepository) Hold(tx *gorm.DB, slotID uint) (int64, error) {
	res := tx.Model(&entity.RoomSlot{}).
		Where("id = ? AND is_available = ?", slotID, true).
		Update("is_available", false)
	return res.RowsAffected, res.Error
}

// Release puts a slot back on the market after a failed payment.
func (r *SlotRepository) Release(tx *gorm.DB, slotID uint) error {
	return tx.Model(&entity.RoomSlot{}).
		Where("id = ?", slotID).
		Update("is_available", true).Error
}
