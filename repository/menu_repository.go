package repository

import (
	"github.com/PhamKien043/datn-sub000/entity"
	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) List(categoryID, statusID *uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	db := r.DB.Model(&entity.Menu{})
	if categoryID != nil && *categoryID != 0 {
		db = db.Where("menu_category_id = ?", *categoryID)
	}
	if statusID != nil && *statusID != 0 {
		db = db.Where("menu_status_id = ?", *statusID)
	}
	err := db.Order("id").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) Get(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Preload("MenuCategory").Preload("MenuStatus").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(id uint, m *entity.Menu) error {
	var existing entity.Menu
	if err := r.DB.First(&existing, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&existing).Updates(m).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategories() ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) CreateCategory(cat *entity.MenuCategory) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) UpdateCategory(id uint, cat *entity.MenuCategory) error {
	var existing entity.MenuCategory
	if err := r.DB.First(&existing, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&existing).Updates(cat).Error
}

func (r *MenuRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.MenuCategory{}, id).Error
}
