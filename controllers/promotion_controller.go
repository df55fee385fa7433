package controllers

import (
	"errors"
	"time"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/pkg/resp"
	"github.com/abira1/Cafe-Colombia01/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PromotionController struct{ Svc *services.PromotionService }

func NewPromotionController(s *services.PromotionService) *PromotionController {
	return &PromotionController{Svc: s}
}

// GET /api/admin/promotions
func (h *PromotionController) List(c *gin.Context) {
	promos, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, promos)
}

type promotionIn struct {
	PromoCode   string     `json:"promoCode" binding:"required"`
	PromoDetail string     `json:"promoDetail"`
	PromoType   string     `json:"promoType" binding:"required,oneof=percent free_delivery amount"`
	Value       int64      `json:"value"`
	MinOrder    int64      `json:"minOrder"`
	StartAt     *time.Time `json:"startAt"`
	EndAt       *time.Time `json:"endAt"`
	Active      *bool      `json:"active"`
}

func (in *promotionIn) toEntity() *entity.Promotion {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return &entity.Promotion{
		PromoCode:   in.PromoCode,
		PromoDetail: in.PromoDetail,
		PromoType:   in.PromoType,
		Value:       in.Value,
		MinOrder:    in.MinOrder,
		StartAt:     in.StartAt,
		EndAt:       in.EndAt,
		Active:      active,
	}
}

// POST /api/admin/promotions
func (h *PromotionController) Create(c *gin.Context) {
	var req promotionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	promo := req.toEntity()
	if err := h.Svc.Create(promo); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, promo)
}

// PATCH /api/admin/promotions/:id
func (h *PromotionController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req promotionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Update(id, req.toEntity()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "promotion not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /api/admin/promotions/:id
func (h *PromotionController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
