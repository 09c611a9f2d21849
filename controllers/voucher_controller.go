package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/PhamKien043/datn-sub000/entity"
	"github.com/PhamKien043/datn-sub000/pkg/resp"
	"github.com/PhamKien043/datn-sub000/services"
	"github.com/PhamKien043/datn-sub000/utils"
	"github.com/gin-gonic/gin"
)

type VoucherController struct {
	vouchers *services.VoucherService
}

func NewVoucherController(vouchers *services.VoucherService) *VoucherController {
	return &VoucherController{vouchers: vouchers}
}

// GET /vouchers?total= returns every voucher classified against the caller's
// current base total.
func (ctl *VoucherController) List(c *gin.Context) {
	var total int64
	if s := c.Query("total"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 0 {
			resp.BadRequest(c, "invalid total")
			return
		}
		total = n
	}

	views, err := ctl.vouchers.ListWithEligibility(utils.CurrentUserID(c), total)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, views)
}

// POST /vouchers/:id/collect
func (ctl *VoucherController) Collect(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := ctl.vouchers.Collect(utils.CurrentUserID(c), id)
	switch {
	case err == nil:
		resp.Created(c, gin.H{"collected": id})
	case errors.Is(err, services.ErrVoucherNotFound):
		resp.NotFound(c, "voucher not found")
	case errors.Is(err, services.ErrAlreadyCollected):
		resp.Conflict(c, "voucher already collected")
	default:
		resp.ServerError(c, err)
	}
}

// GET /vouchers/mine
func (ctl *VoucherController) Mine(c *gin.Context) {
	rows, err := ctl.vouchers.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// ---------------- Admin ----------------

type voucherIn struct {
	Code          string `json:"code" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Detail        string `json:"detail"`
	Value         int64  `json:"value" binding:"required,min=1"`
	MinOrder      int64  `json:"minOrder" binding:"min=0"`
	StartAt       string `json:"startAt"`
	EndAt         string `json:"endAt"`
	Active        *bool  `json:"active"`
	VoucherTypeID uint   `json:"voucherTypeId" binding:"required"`
}

func (in *voucherIn) toEntity() (*entity.Voucher, error) {
	v := &entity.Voucher{
		Code:          in.Code,
		Title:         in.Title,
		Detail:        in.Detail,
		Value:         in.Value,
		MinOrder:      in.MinOrder,
		Active:        true,
		VoucherTypeID: in.VoucherTypeID,
	}
	if in.Active != nil {
		v.Active = *in.Active
	}
	if in.StartAt != "" {
		t, err := time.Parse(time.RFC3339, in.StartAt)
		if err != nil {
			return nil, errors.New("invalid startAt, want RFC3339")
		}
		v.StartAt = &t
	}
	if in.EndAt != "" {
		t, err := time.Parse(time.RFC3339, in.EndAt)
		if err != nil {
			return nil, errors.New("invalid endAt, want RFC3339")
		}
		v.EndAt = &t
	}
	return v, nil
}

// GET /admin/vouchers
func (ctl *VoucherController) AdminList(c *gin.Context) {
	vouchers, err := ctl.vouchers.GetAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, vouchers)
}

// POST /admin/vouchers
func (ctl *VoucherController) Create(c *gin.Context) {
	var in voucherIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := in.toEntity()
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.vouchers.Create(v); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, v)
}

// PUT /admin/vouchers/:id
func (ctl *VoucherController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in voucherIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := in.toEntity()
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.vouchers.Update(id, v); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

// DELETE /admin/vouchers/:id
func (ctl *VoucherController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.vouchers.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
