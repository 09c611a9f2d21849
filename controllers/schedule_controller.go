package controllers

import (
	"errors"

	"github.com/PhamKien043/datn-sub000/pkg/resp"
	"github.com/PhamKien043/datn-sub000/services"
	"github.com/gin-gonic/gin"
)

// ScheduleController is the admin schedule manager over room slots.
type ScheduleController struct {
	schedule *services.ScheduleService
}

func NewScheduleController(schedule *services.ScheduleService) *ScheduleController {
	return &ScheduleController{schedule: schedule}
}

// POST /admin/rooms/:id/slots
func (ctl *ScheduleController) Create(c *gin.Context) {
	roomID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.SlotIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	slot, err := ctl.schedule.Create(roomID, &in)
	switch {
	case err == nil:
		resp.Created(c, slot)
	case errors.Is(err, services.ErrRoomNotFound):
		resp.NotFound(c, "room not found")
	case errors.Is(err, services.ErrSlotExists):
		resp.Conflict(c, "slot already exists for this room/date/time")
	default:
		resp.BadRequest(c, err.Error())
	}
}

// GET /admin/rooms/:id/slots?from=&to= lists all slots, held ones included.
func (ctl *ScheduleController) List(c *gin.Context) {
	roomID, ok := parseID(c, "id")
	if !ok {
		return
	}
	slots, err := ctl.schedule.ListForRoom(roomID, c.Query("from"), c.Query("to"), false)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, slots)
}

// PUT /admin/slots/:id
func (ctl *ScheduleController) Update(c *gin.Context) {
	slotID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.SlotIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	slot, err := ctl.schedule.Update(slotID, &in)
	switch {
	case err == nil:
		resp.OK(c, slot)
	case errors.Is(err, services.ErrSlotNotFound):
		resp.NotFound(c, "slot not found")
	case errors.Is(err, services.ErrSlotExists):
		resp.Conflict(c, "slot already exists for this room/date/time")
	default:
		resp.BadRequest(c, err.Error())
	}
}

// DELETE /admin/slots/:id
func (ctl *ScheduleController) Delete(c *gin.Context) {
	slotID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.schedule.Delete(slotID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": slotID})
}
