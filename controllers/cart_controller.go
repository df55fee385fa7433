package controllers

import (
	"errors"

	"github.com/abira1/Cafe-Colombia01/pkg/resp"
	"github.com/abira1/Cafe-Colombia01/services"
	"github.com/abira1/Cafe-Colombia01/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	token := utils.SessionToken(c)

	cart, quote, err := h.Svc.Get(token)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "quote": quote})
}

// POST /api/cart/items
func (h *CartController) Add(c *gin.Context) {
	token := utils.SessionToken(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(token, &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"added": true})
}

// PATCH /api/cart/items/:id — qty 0 removes the line
func (h *CartController) UpdateQty(c *gin.Context) {
	token := utils.SessionToken(c)

	itemID, ok := paramID(c)
	if !ok {
		return
	}
	var body struct {
		Qty *int `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(token, itemID, *body.Qty); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /api/cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	token := utils.SessionToken(c)

	itemID, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.RemoveItem(token, itemID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	token := utils.SessionToken(c)

	if err := h.Svc.Clear(token); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

// POST /api/cart/coupon
func (h *CartController) ApplyCoupon(c *gin.Context) {
	token := utils.SessionToken(c)

	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	quote, err := h.Svc.ApplyCoupon(token, body.Code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCoupon),
			errors.Is(err, services.ErrMinOrderNotMet):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, quote)
}

// DELETE /api/cart/coupon
func (h *CartController) RemoveCoupon(c *gin.Context) {
	token := utils.SessionToken(c)

	quote, err := h.Svc.RemoveCoupon(token)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, quote)
}
