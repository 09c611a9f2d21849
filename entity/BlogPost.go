package entity

import (
	"gorm.io/gorm"
)

type BlogPost struct {
	gorm.Model
	Title     string `gorm:"not null" json:"title"`
	Slug      string `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Content   string `gorm:"type:text" json:"content"`
	CoverURL  string `json:"coverUrl"`
	Published bool   `gorm:"default:false" json:"published"`

	AuthorID uint `json:"authorId"`
	Author   User `gorm:"foreignKey:AuthorID" json:"-"`
}
