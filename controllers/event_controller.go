package controllers

import (
	"errors"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/pkg/resp"
	"github.com/abira1/Cafe-Colombia01/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventController struct{ Svc *services.EventService }

func NewEventController(s *services.EventService) *EventController { return &EventController{Svc: s} }

// GET /api/events — active only, soonest first
func (h *EventController) ListPublic(c *gin.Context) {
	events, err := h.Svc.ListPublic()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, events)
}

// GET /api/admin/events
func (h *EventController) ListAll(c *gin.Context) {
	events, err := h.Svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, events)
}

type eventIn struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Price       int64  `json:"price" binding:"min=0"`
	Active      *bool  `json:"active"`
}

func (in *eventIn) toEntity() *entity.Event {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return &entity.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Picture:     in.Image,
		Capacity:    in.Capacity,
		Price:       in.Price,
		Active:      active,
	}
}

// POST /api/admin/events
func (h *EventController) Create(c *gin.Context) {
	var req eventIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	event := req.toEntity()
	if err := h.Svc.Create(event); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, event)
}

// PATCH /api/admin/events/:id
func (h *EventController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req eventIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	event, err := h.Svc.Update(id, req.toEntity())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "event not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, event)
}

// PUT /api/admin/events — whole-collection replace
func (h *EventController) Replace(c *gin.Context) {
	var events []entity.Event
	if err := c.ShouldBindJSON(&events); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Replace(events); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, events)
}

// DELETE /api/admin/events/:id
func (h *EventController) Delete(c *gin.Context) {
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
