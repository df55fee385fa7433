package controllers

import (
	"errors"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/pkg/resp"
	"github.com/abira1/Cafe-Colombia01/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GalleryController struct{ Svc *services.GalleryService }

func NewGalleryController(s *services.GalleryService) *GalleryController {
	return &GalleryController{Svc: s}
}

// GET /api/gallery
func (h *GalleryController) List(c *gin.Context) {
	items, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

type galleryIn struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"required"`
}

// POST /api/admin/gallery
func (h *GalleryController) Create(c *gin.Context) {
	var req galleryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item := &entity.GalleryItem{Title: req.Title, Description: req.Description, Picture: req.Image}
	if err := h.Svc.Create(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /api/admin/gallery/:id
func (h *GalleryController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req galleryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Update(id, &entity.GalleryItem{Title: req.Title, Description: req.Description, Picture: req.Image})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "gallery item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT /api/admin/gallery — whole-collection replace
func (h *GalleryController) Replace(c *gin.Context) {
	var items []entity.GalleryItem
	if err := c.ShouldBindJSON(&items); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Replace(items); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// DELETE /api/admin/gallery/:id
func (h *GalleryController) Delete(c *gin.Context) {
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
