package controllers

import (
	"errors"
	"strconv"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/pkg/resp"
	"github.com/abira1/Cafe-Colombia01/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

func paramID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(n), true
}

// GET /api/menu?category=
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.List(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

type menuItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
	Category    string `json:"category" binding:"required"`
	Image       string `json:"image"`
	Tags        string `json:"tags"`
	Active      *bool  `json:"active"`
}

func (in *menuItemIn) toEntity() *entity.MenuItem {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Picture:     in.Image,
		Tags:        in.Tags,
		Active:      active,
	}
}

// POST /api/admin/menu
func (h *MenuController) Create(c *gin.Context) {
	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item := req.toEntity()
	if err := h.Svc.Create(item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, item)
}

// PATCH /api/admin/menu/:id
func (h *MenuController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Update(id, req.toEntity())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/admin/menu/:id
func (h *MenuController) Delete(c *gin.Context) {
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

// PUT /api/admin/menu — whole-collection replace, as the admin console saves
func (h *MenuController) Replace(c *gin.Context) {
	var items []entity.MenuItem
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
