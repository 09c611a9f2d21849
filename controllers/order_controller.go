package controllers

import (
	"errors"
	"strconv"

	"github.com/PhamKien043/datn-sub000/pkg/resp"
	"github.com/PhamKien043/datn-sub000/services"
	"github.com/PhamKien043/datn-sub000/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// GET /orders?limit=
func (ctl *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := ctl.orders.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail, err := ctl.orders.DetailForUser(utils.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// ---------------- Admin ----------------

// GET /admin/orders?statusId=&page=&limit=
func (ctl *OrderController) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	out, err := ctl.orders.ListAll(queryID(c, "statusId"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/orders/:id
func (ctl *OrderController) AdminDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail, err := ctl.orders.Detail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /admin/orders/:id/advance moves the order one step along the chain.
func (ctl *OrderController) Advance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	next, err := ctl.orders.Advance(id)
	switch {
	case err == nil:
		resp.OK(c, gin.H{"status": next})
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Unprocessable(c, map[string][]string{"status": {"order cannot advance from its current status"}})
	case errors.Is(err, services.ErrStatusConflict):
		resp.Conflict(c, "order status changed concurrently")
	default:
		resp.ServerError(c, err)
	}
}

type setStatusReq struct {
	Status string `json:"status" binding:"required,oneof=pending deposit_paid confirmed awaiting_balance completed failed cancelled"`
}

// PUT /admin/orders/:id sets an explicit target, still bound by the chain.
func (ctl *OrderController) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.orders.SetStatus(id, req.Status)
	switch {
	case err == nil:
		resp.OK(c, gin.H{"status": req.Status})
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Unprocessable(c, map[string][]string{"status": {"illegal status transition"}})
	case errors.Is(err, services.ErrStatusConflict):
		resp.Conflict(c, "order status changed concurrently")
	default:
		resp.ServerError(c, err)
	}
}
