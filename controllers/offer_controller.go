package controllers

import (
	"errors"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/pkg/resp"
	"github.com/abira1/Cafe-Colombia01/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OfferController struct{ Svc *services.OfferService }

func NewOfferController(s *services.OfferService) *OfferController { return &OfferController{Svc: s} }

// GET /api/offers — active and not expired
func (h *OfferController) ListPublic(c *gin.Context) {
	offers, err := h.Svc.ListPublic()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, offers)
}

// GET /api/admin/offers
func (h *OfferController) ListAll(c *gin.Context) {
	offers, err := h.Svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, offers)
}

type offerIn struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Availability string `json:"availability"`
	ValidUntil   string `json:"validUntil" binding:"required"`
	Discount     int    `json:"discount" binding:"min=0,max=100"`
	Image        string `json:"image"`
	Active       *bool  `json:"active"`
}

func (in *offerIn) toEntity() *entity.Offer {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return &entity.Offer{
		Title:        in.Title,
		Description:  in.Description,
		Icon:         in.Icon,
		Availability: in.Availability,
		ValidUntil:   in.ValidUntil,
		Discount:     in.Discount,
		Picture:      in.Image,
		Active:       active,
	}
}

// POST /api/admin/offers
func (h *OfferController) Create(c *gin.Context) {
	var req offerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	offer := req.toEntity()
	if err := h.Svc.Create(offer); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, offer)
}

// PATCH /api/admin/offers/:id
func (h *OfferController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req offerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	offer, err := h.Svc.Update(id, req.toEntity())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "offer not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, offer)
}

// PUT /api/admin/offers — whole-collection replace
func (h *OfferController) Replace(c *gin.Context) {
	var offers []entity.Offer
	if err := c.ShouldBindJSON(&offers); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Replace(offers); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, offers)
}

// DELETE /api/admin/offers/:id
func (h *OfferController) Delete(c *gin.Context) {
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
