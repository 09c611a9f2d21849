package controllers

import (
	"errors"
	"strings"

	"github.com/PhamKien043/datn-sub000/entity"
	"github.com/PhamKien043/datn-sub000/pkg/resp"
	"github.com/PhamKien043/datn-sub000/repository"
	"github.com/PhamKien043/datn-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BlogController struct {
	repo *repository.BlogRepository
}

func NewBlogController(repo *repository.BlogRepository) *BlogController {
	return &BlogController{repo: repo}
}

// GET /blog
func (ctl *BlogController) List(c *gin.Context) {
	posts, err := ctl.repo.ListPublished()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, posts)
}

// GET /blog/:slug
func (ctl *BlogController) Detail(c *gin.Context) {
	post, err := ctl.repo.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "post not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, post)
}

// ---------------- Admin ----------------

type blogIn struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	CoverURL  string `json:"coverUrl"`
	Published bool   `json:"published"`
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// GET /admin/blog
func (ctl *BlogController) AdminList(c *gin.Context) {
	posts, err := ctl.repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, posts)
}

// POST /admin/blog
func (ctl *BlogController) Create(c *gin.Context) {
	var in blogIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.Slug == "" {
		in.Slug = slugify(in.Title)
	}

	post := &entity.BlogPost{
		Title:     in.Title,
		Slug:      in.Slug,
		Content:   in.Content,
		CoverURL:  in.CoverURL,
		Published: in.Published,
		AuthorID:  utils.CurrentUserID(c),
	}
	if err := ctl.repo.Create(post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			resp.Conflict(c, "slug already in use")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, post)
}

// PUT /admin/blog/:id
func (ctl *BlogController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in blogIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if in.Slug == "" {
		in.Slug = slugify(in.Title)
	}

	patch := &entity.BlogPost{
		Title: in.Title, Slug: in.Slug, Content: in.Content,
		CoverURL: in.CoverURL, Published: in.Published,
	}
	if err := ctl.repo.Update(id, patch); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "post not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

// DELETE /admin/blog/:id
func (ctl *BlogController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.repo.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
