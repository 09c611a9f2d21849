package services

import (
	"errors"
	"time"

	"github.com/PhamKien043/datn-sub000/entity"
	"github.com/PhamKien043/datn-sub000/repository"
	"gorm.io/gorm"
)

var (
	ErrSlotExists   = errors.New("slot already exists")
	ErrSlotNotFound = errors.New("slot not found")
)

// ScheduleService is the admin side of room availability: it owns RoomSlot
// rows; the booking flow only reads them and flips availability.
type ScheduleService struct {
	DB          *gorm.DB
	SlotRepo    *repository.SlotRepository
	CatalogRepo *repository.CatalogRepository
}

func NewScheduleService(db *gorm.DB, sr *repository.SlotRepository, cr *repository.CatalogRepository) *ScheduleService {
	return &ScheduleService{DB: db, SlotRepo: sr, CatalogRepo: cr}
}

type SlotIn struct {
	Date        string `json:"date" binding:"required"`
	TimeSlot    string `json:"timeSlot" binding:"required,oneof=morning afternoon"`
	IsAvailable *bool  `json:"isAvailable"`
}

func (s *ScheduleService) Create(roomID uint, in *SlotIn) (*entity.RoomSlot, error) {
	if _, err := s.CatalogRepo.GetRoom(roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, errors.New("invalid date, want YYYY-MM-DD")
	}

	slot := entity.RoomSlot{
		RoomID:      roomID,
		SlotDate:    date,
		TimeSlot:    in.TimeSlot,
		IsAvailable: true,
	}
	if in.IsAvailable != nil {
		slot.IsAvailable = *in.IsAvailable
	}

	if err := s.SlotRepo.Create(&slot); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotExists
		}
		return nil, err
	}
	return &slot, nil
}

// ListForRoom returns the schedule window; clients only see open slots,
// admins see everything.
func (s *ScheduleService) ListForRoom(roomID uint, fromStr, toStr string, onlyAvailable bool) ([]entity.RoomSlot, error) {
	from := time.Now().Truncate(24 * time.Hour)
	to := from.AddDate(0, 3, 0)
	if fromStr != "" {
		d, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, errors.New("invalid from date")
		}
		from = d
	}
	if toStr != "" {
		d, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, errors.New("invalid to date")
		}
		to = d
	}
	return s.SlotRepo.ListForRoom(roomID, from, to, onlyAvailable)
}

func (s *ScheduleService) Update(slotID uint, in *SlotIn) (*entity.RoomSlot, error) {
	existing, err := s.SlotRepo.Get(slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, errors.New("invalid date, want YYYY-MM-DD")
	}

	patch := entity.RoomSlot{SlotDate: date, TimeSlot: in.TimeSlot, IsAvailable: existing.IsAvailable}
	if in.IsAvailable != nil {
		patch.IsAvailable = *in.IsAvailable
	}

	if err := s.SlotRepo.Update(slotID, &patch); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotExists
		}
		return nil, err
	}
	return s.SlotRepo.Get(slotID)
}

func (s *ScheduleService) Delete(slotID uint) error {
	return s.SlotRepo.Delete(slotID)
}
