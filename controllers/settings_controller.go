package controllers

import (
	"fmt"
	"time"

	"github.com/abira1/Cafe-Colombia01/pkg/resp"
	"github.com/abira1/Cafe-Colombia01/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Svc    *services.SettingsService
	Export *services.ExportService
}

func NewSettingsController(s *services.SettingsService, e *services.ExportService) *SettingsController {
	return &SettingsController{Svc: s, Export: e}
}

// GET /api/admin/settings/notifications
func (h *SettingsController) GetNotifications(c *gin.Context) {
	settings, err := h.Svc.GetNotifications()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, settings)
}

// PUT /api/admin/settings/notifications
func (h *SettingsController) UpdateNotifications(c *gin.Context) {
	var req services.NotificationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	settings, err := h.Svc.UpdateNotifications(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, settings)
}

// POST /api/admin/settings/cleanup — purge cancelled bookings/reservations
func (h *SettingsController) Cleanup(c *gin.Context) {
	result, err := h.Svc.Cleanup()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, result)
}

// GET /api/admin/export/reservations
func (h *SettingsController) ExportReservations(c *gin.Context) {
	h.sendWorkbook(c, "reservations", h.Export.Reservations)
}

// GET /api/admin/export/events
func (h *SettingsController) ExportEvents(c *gin.Context) {
	h.sendWorkbook(c, "events", h.Export.Events)
}

// GET /api/admin/export/all
func (h *SettingsController) ExportAll(c *gin.Context) {
	h.sendWorkbook(c, "cafe-data", h.Export.All)
}

func (h *SettingsController) sendWorkbook(c *gin.Context, name string, build func() ([]byte, error)) {
	data, err := build()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
