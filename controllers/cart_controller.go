package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PhamKien043/datn-sub000/pkg/resp"
	"github.com/PhamKien043/datn-sub000/services"
	"github.com/PhamKien043/datn-sub000/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	cart, subtotal, err := ctl.cart.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

type addItemReq struct {
	MenuID uint `json:"menuId" binding:"required"`
}

// POST /cart/items
func (ctl *CartController) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.cart.AddItem(utils.CurrentUserID(c), req.MenuID); err != nil {
		if errors.Is(err, services.ErrMenuUnavailable) {
			resp.Unprocessable(c, map[string][]string{"menuId": {"menu is unavailable"}})
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"added": req.MenuID})
}

// DELETE /cart/items/:id
func (ctl *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := ctl.cart.RemoveItem(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": id})
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	if err := ctl.cart.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

type tableCountReq struct {
	Count   int  `json:"count" binding:"required"`
	Confirm bool `json:"confirm"`
}

// PUT /cart/table-count
func (ctl *CartController) SetTableCount(c *gin.Context) {
	var req tableCountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.cart.SetTableCount(utils.CurrentUserID(c), req.Count, req.Confirm)
	switch {
	case err == nil:
		resp.OK(c, gin.H{"tableCount": req.Count})
	case errors.Is(err, services.ErrTableCountRange):
		resp.Unprocessable(c, map[string][]string{"count": {"table count must be between 1 and 50"}})
	case errors.Is(err, services.ErrConfirmRequired):
		c.JSON(http.StatusConflict, gin.H{
			"ok":                   false,
			"error":                "large change, confirmation required",
			"requiresConfirmation": true,
		})
	default:
		resp.ServerError(c, err)
	}
}

type bookingReq struct {
	RoomID    uint   `json:"roomId" binding:"required"`
	ServiceID uint   `json:"serviceId"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"timeSlot" binding:"required,oneof=morning afternoon"`
}

// PUT /cart/booking
func (ctl *CartController) SetBooking(c *gin.Context) {
	var req bookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.cart.SetBooking(utils.CurrentUserID(c), req.RoomID, req.ServiceID, req.Date, req.TimeSlot)
	switch {
	case err == nil:
		resp.OK(c, gin.H{"saved": true})
	case errors.Is(err, services.ErrRoomNotFound):
		resp.NotFound(c, "room not found")
	default:
		resp.BadRequest(c, err.Error())
	}
}
