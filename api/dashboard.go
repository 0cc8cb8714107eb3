package api

import (
	"net/http"
	"strconv"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/service/dashboard"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service dashboard.DashboardUseCase
}

func NewDashboardHandler(service dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) Register(router *gin.RouterGroup) {
	router.GET("/monthly-revenue", h.monthlyRevenue)
	router.GET("/room-performance", h.roomPerformance)
	router.GET("/demographics", h.demographics)
	router.GET("/metrics", h.metrics)
	router.GET("/recent-bookings", h.recentBookings)
}

func (h *DashboardHandler) monthlyRevenue(c *gin.Context) {
	out, err := h.service.MonthlyRevenue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DashboardHandler) roomPerformance(c *gin.Context) {
	out, err := h.service.RoomTypePerformance(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DashboardHandler) demographics(c *gin.Context) {
	out, err := h.service.GuestDemographics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DashboardHandler) metrics(c *gin.Context) {
	out, err := h.service.Metrics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DashboardHandler) recentBookings(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	out, err := h.service.RecentBookings(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
