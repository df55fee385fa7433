package controllers

import (
	"errors"

	"github.com/abira1/Cafe-Colombia01/pkg/resp"
	"github.com/abira1/Cafe-Colombia01/services"
	"github.com/abira1/Cafe-Colombia01/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc *services.OrderService
	QR  services.QRGenerator
}

func NewOrderController(s *services.OrderService, qr services.QRGenerator) *OrderController {
	return &OrderController{Svc: s, QR: qr}
}

// POST /api/orders — checkout
func (h *OrderController) Checkout(c *gin.Context) {
	token := utils.SessionToken(c)

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Checkout(token, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOutsideDelivery):
			resp.Unprocessable(c, err.Error())
		case errors.Is(err, services.ErrCartEmpty):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /api/orders/:code
func (h *OrderController) GetByCode(c *gin.Context) {
	order, err := h.Svc.GetByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/orders/:code/qr — PNG for the confirmation page
func (h *OrderController) QRCode(c *gin.Context) {
	code := c.Param("code")
	if _, err := h.Svc.GetByCode(code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	png, err := h.QR.Generate(code)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(200, "image/png", png)
}

// GET /api/admin/orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /api/admin/orders/:id/complete
func (h *OrderController) Complete(c *gin.Context) {
	h.transition(c, h.Svc.Complete)
}

// PATCH /api/admin/orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	h.transition(c, h.Svc.Cancel)
}

func (h *OrderController) transition(c *gin.Context, fn func(uint) error) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := fn(id); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
