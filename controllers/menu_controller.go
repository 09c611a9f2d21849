package controllers

import (
	"errors"
	"strconv"

	"github.com/PhamKien043/datn-sub000/entity"
	"github.com/PhamKien043/datn-sub000/pkg/resp"
	"github.com/PhamKien043/datn-sub000/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	repo *repository.MenuRepository
}

func NewMenuController(repo *repository.MenuRepository) *MenuController {
	return &MenuController{repo: repo}
}

func queryID(c *gin.Context, name string) *uint {
	if s := c.Query(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			id := uint(n)
			return &id
		}
	}
	return nil
}

// GET /menus?categoryId=&statusId=
func (ctl *MenuController) List(c *gin.Context) {
	menus, err := ctl.repo.List(queryID(c, "categoryId"), queryID(c, "statusId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}

// GET /menus/:id
func (ctl *MenuController) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	m, err := ctl.repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// GET /menu-categories
func (ctl *MenuController) Categories(c *gin.Context) {
	cats, err := ctl.repo.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// ---------------- Admin ----------------

type menuIn struct {
	Name           string `json:"name" binding:"required"`
	Detail         string `json:"detail"`
	Price          int64  `json:"price" binding:"min=0"`
	ImageURL       string `json:"imageUrl"`
	MenuCategoryID uint   `json:"menuCategoryId"`
	MenuStatusID   uint   `json:"menuStatusId"`
}

func (in *menuIn) toEntity() *entity.Menu {
	return &entity.Menu{
		Name: in.Name, Detail: in.Detail, Price: in.Price, ImageURL: in.ImageURL,
		MenuCategoryID: in.MenuCategoryID, MenuStatusID: in.MenuStatusID,
	}
}

// POST /admin/menus
func (ctl *MenuController) Create(c *gin.Context) {
	var in menuIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m := in.toEntity()
	if err := ctl.repo.Create(m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /admin/menus/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in menuIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.repo.Update(id, in.toEntity()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

// DELETE /admin/menus/:id
func (ctl *MenuController) Delete(c *gin.Context) {
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

type categoryIn struct {
	CategoryName string `json:"categoryName" binding:"required"`
}

// POST /admin/menu-categories
func (ctl *MenuController) CreateCategory(c *gin.Context) {
	var in categoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := &entity.MenuCategory{CategoryName: in.CategoryName}
	if err := ctl.repo.CreateCategory(cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /admin/menu-categories/:id
func (ctl *MenuController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in categoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.repo.UpdateCategory(id, &entity.MenuCategory{CategoryName: in.CategoryName}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

// DELETE /admin/menu-categories/:id
func (ctl *MenuController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.repo.DeleteCategory(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
