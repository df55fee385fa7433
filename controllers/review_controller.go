// controllers/review_controller.go
package controllers

import (
	"errors"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/pkg/resp"
	"github.com/abira1/Cafe-Colombia01/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// GET /api/reviews — approved + active only
func (h *ReviewController) ListPublic(c *gin.Context) {
	reviews, err := h.Svc.ListPublic()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// POST /api/reviews — public submission, starts pending
func (h *ReviewController) Create(c *gin.Context) {
	var req services.CreateReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := h.Svc.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /api/admin/reviews
func (h *ReviewController) ListAll(c *gin.Context) {
	reviews, err := h.Svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// PATCH /api/admin/reviews/:id/status — approve / reject
func (h *ReviewController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req statusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := h.Svc.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "review not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, review)
}

type activeIn struct {
	Active *bool `json:"active" binding:"required"`
}

// PATCH /api/admin/reviews/:id/active
func (h *ReviewController) SetActive(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req activeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := h.Svc.SetActive(id, *req.Active)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "review not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, review)
}

// PUT /api/admin/reviews — whole-collection replace
func (h *ReviewController) Replace(c *gin.Context) {
	var reviews []entity.Review
	if err := c.ShouldBindJSON(&reviews); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Replace(reviews); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// DELETE /api/admin/reviews/:id
func (h *ReviewController) Delete(c *gin.Context) {
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
