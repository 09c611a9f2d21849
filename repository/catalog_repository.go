package repository

import (
	"github.com/PhamKien043/datn-sub000/entity"
	"gorm.io/gorm"
)

// CatalogRepository covers the read-mostly venue catalog: rooms, location
// types and event services.
type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// ---------------- Rooms ----------------

func (r *CatalogRepository) ListRooms(locationTypeID *uint) ([]entity.Room, error) {
	var rooms []entity.Room
	db := r.DB.Model(&entity.Room{})
	if locationTypeID != nil && *locationTypeID != 0 {
		db = db.Where("location_type_id = ?", *locationTypeID)
	}
	err := db.Order("id").Find(&rooms).Error
	return rooms, err
}

func (r *CatalogRepository) GetRoom(id uint) (*entity.Room, error) {
	var room entity.Room
	if err := r.DB.Preload("LocationType").First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *CatalogRepository) CreateRoom(room *entity.Room) error {
	return r.DB.Create(room).Error
}

func (r *CatalogRepository) UpdateRoom(id uint, room *entity.Room) error {
	var existing entity.Room
	if err := r.DB.First(&existing, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&existing).Updates(room).Error
}

func (r *CatalogRepository) DeleteRoom(id uint) error {
	return r.DB.Delete(&entity.Room{}, id).Error
}

func (r *CatalogRepository) ListLocationTypes() ([]entity.LocationType, error) {
	var types []entity.LocationType
	err := r.DB.Order("id").Find(&types).Error
	return types, err
}

// ---------------- Services ----------------

func (r *CatalogRepository) ListServices() ([]entity.Service, error) {
	var svcs []entity.Service
	err := r.DB.Order("id").Find(&svcs).Error
	return svcs, err
}

func (r *CatalogRepository) GetService(id uint) (*entity.Service, error) {
	var svc entity.Service
	if err := r.DB.First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *CatalogRepository) CreateService(svc *entity.Service) error {
	return r.DB.Create(svc).Error
}

func (r *CatalogRepository) UpdateService(id uint, svc *entity.Service) error {
	var existing entity.Service
	if err := r.DB.First(&existing, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&existing).Updates(svc).Error
}

func (r *CatalogRepository) DeleteService(id uint) error {
	return r.DB.Delete(&entity.Service{}, id).Error
}
