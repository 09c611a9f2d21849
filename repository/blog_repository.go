package repository

import (
	"github.com/PhamKien043/datn-sub000/entity"
	"gorm.io/gorm"
)

type BlogRepository struct{ DB *gorm.DB }

func NewBlogRepository(db *gorm.DB) *BlogRepository { return &BlogRepository{DB: db} }

func (r *BlogRepository) ListPublished() ([]entity.BlogPost, error) {
	var posts []entity.BlogPost
	err := r.DB.Where("published = ?", true).Order("id DESC").Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) ListAll() ([]entity.BlogPost, error) {
	var posts []entity.BlogPost
	err := r.DB.Order("id DESC").Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) GetBySlug(slug string) (*entity.BlogPost, error) {
	var p entity.BlogPost
	if err := r.DB.Where("slug = ? AND published = ?", slug, true).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BlogRepository) Get(id uint) (*entity.BlogPost, error) {
	var p entity.BlogPost
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BlogRepository) Create(p *entity.BlogPost) error {
	return r.DB.Create(p).Error
}

func (r *BlogRepository) Update(id uint, p *entity.BlogPost) error {
	var existing entity.BlogPost
	if err := r.DB.First(&existing, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&existing).
		Select("Title", "Slug", "Content", "CoverURL", "Published").
		Updates(p).Error
}

func (r *BlogRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.BlogPost{}, id).Error
}
