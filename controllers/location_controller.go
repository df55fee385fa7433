package controllers

import (
	"github.com/abira1/Cafe-Colombia01/pkg/resp"
	"github.com/abira1/Cafe-Colombia01/services"

	"github.com/gin-gonic/gin"
)

type LocationController struct{ Svc *services.LocationService }

func NewLocationController(s *services.LocationService) *LocationController {
	return &LocationController{Svc: s}
}

type locationIn struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// POST /api/location/check — the browser sends its geolocation fix; a
// client that could not get one simply never calls this and stays in the
// "delivery not available" state.
func (h *LocationController) Check(c *gin.Context) {
	var req locationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.Svc.Check(*req.Latitude, *req.Longitude))
}
