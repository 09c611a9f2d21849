package controllers

import (
	"errors"
	"strconv"

	"github.com/PhamKien043/datn-sub000/entity"
	"github.com/PhamKien043/datn-sub000/pkg/resp"
	"github.com/PhamKien043/datn-sub000/repository"
	"github.com/PhamKien043/datn-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoomController struct {
	repo     *repository.CatalogRepository
	schedule *services.ScheduleService
}

func NewRoomController(repo *repository.CatalogRepository, schedule *services.ScheduleService) *RoomController {
	return &RoomController{repo: repo, schedule: schedule}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n <= 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}

// GET /rooms?locationTypeId=
func (ctl *RoomController) List(c *gin.Context) {
	var locID *uint
	if s := c.Query("locationTypeId"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			id := uint(n)
			locID = &id
		}
	}
	rooms, err := ctl.repo.ListRooms(locID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rooms)
}

// GET /rooms/:id
func (ctl *RoomController) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	room, err := ctl.repo.GetRoom(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "room not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, room)
}

// GET /rooms/:id/slots?from=&to= returns open slots only, so the client can
// restrict selectable date/time combinations.
func (ctl *RoomController) Slots(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	slots, err := ctl.schedule.ListForRoom(id, c.Query("from"), c.Query("to"), true)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, slots)
}

// GET /location-types
func (ctl *RoomController) LocationTypes(c *gin.Context) {
	types, err := ctl.repo.ListLocationTypes()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, types)
}

// GET /services
func (ctl *RoomController) Services(c *gin.Context) {
	svcs, err := ctl.repo.ListServices()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, svcs)
}

// ---------------- Admin ----------------

type roomIn struct {
	Name           string `json:"name" binding:"required"`
	Detail         string `json:"detail"`
	Price          int64  `json:"price" binding:"min=0"`
	Capacity       int    `json:"capacity" binding:"min=0"`
	TableFee       int64  `json:"tableFee" binding:"min=0"`
	ImageURL       string `json:"imageUrl"`
	LocationTypeID uint   `json:"locationTypeId"`
}

func (in *roomIn) toEntity() *entity.Room {
	return &entity.Room{
		Name: in.Name, Detail: in.Detail, Price: in.Price,
		Capacity: in.Capacity, TableFee: in.TableFee,
		ImageURL: in.ImageURL, LocationTypeID: in.LocationTypeID,
	}
}

// POST /admin/rooms
func (ctl *RoomController) Create(c *gin.Context) {
	var in roomIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	room := in.toEntity()
	if err := ctl.repo.CreateRoom(room); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, room)
}

// PUT /admin/rooms/:id
func (ctl *RoomController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in roomIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.repo.UpdateRoom(id, in.toEntity()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "room not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

// DELETE /admin/rooms/:id
func (ctl *RoomController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.repo.DeleteRoom(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type serviceIn struct {
	Name     string `json:"name" binding:"required"`
	Detail   string `json:"detail"`
	ImageURL string `json:"imageUrl"`
}

// POST /admin/services
func (ctl *RoomController) CreateService(c *gin.Context) {
	var in serviceIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	svc := &entity.Service{Name: in.Name, Detail: in.Detail, ImageURL: in.ImageURL}
	if err := ctl.repo.CreateService(svc); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, svc)
}

// PUT /admin/services/:id
func (ctl *RoomController) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in serviceIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	svc := &entity.Service{Name: in.Name, Detail: in.Detail, ImageURL: in.ImageURL}
	if err := ctl.repo.UpdateService(id, svc); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "service not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

// DELETE /admin/services/:id
func (ctl *RoomController) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.repo.DeleteService(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
