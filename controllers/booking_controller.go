package controllers

import (
	"errors"

	"github.com/abira1/Cafe-Colombia01/pkg/resp"
	"github.com/abira1/Cafe-Colombia01/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookingController struct{ Svc *services.BookingService }

func NewBookingController(s *services.BookingService) *BookingController {
	return &BookingController{Svc: s}
}

// POST /api/bookings — public event booking form
func (h *BookingController) Create(c *gin.Context) {
	var req services.CreateBookingIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	booking, err := h.Svc.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "event not found")
		case errors.Is(err, services.ErrCapacityExceeded),
			errors.Is(err, services.ErrEventNotBookable):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, booking)
}

// GET /api/admin/bookings?status=
func (h *BookingController) List(c *gin.Context) {
	bookings, err := h.Svc.List(c.Query("status"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, bookings)
}

type statusIn struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/admin/bookings/:id/status
func (h *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req statusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	booking, err := h.Svc.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "booking not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, booking)
}
