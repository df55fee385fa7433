package controllers

import (
	"time"

	"github.com/abira1/Cafe-Colombia01/entity"
	"github.com/abira1/Cafe-Colombia01/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// Dashboard: headline numbers for the landing screen.
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var menuItems int64
	var activeEvents int64
	var pendingBookings int64
	var pendingReservations int64
	var pendingReviews int64
	var ordersToday int64
	var revenueToday int64

	if err := db.Model(&entity.MenuItem{}).Count(&menuItems).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Event{}).Where("active = ?", true).Count(&activeEvents).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Booking{}).Where("status = ?", entity.StatusPending).Count(&pendingBookings).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Reservation{}).Where("status = ?", entity.StatusPending).Count(&pendingReservations).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Review{}).Where("status = ?", entity.ReviewPending).Count(&pendingReviews).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	start := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&entity.Order{}).Where("created_at >= ?", start).Count(&ordersToday).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Order{}).
		Where("created_at >= ? AND status <> ?", start, entity.OrderCancelled).
		Select("COALESCE(SUM(total), 0)").Scan(&revenueToday).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"menuItems":           menuItems,
		"activeEvents":        activeEvents,
		"pendingBookings":     pendingBookings,
		"pendingReservations": pendingReservations,
		"pendingReviews":      pendingReviews,
		"ordersToday":         ordersToday,
		"revenueToday":        revenueToday,
	})
}
