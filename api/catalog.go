package api

import (
	"net/http"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/service/dashboard"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the option lists the booking form renders from:
// room types, meal plans and market segments, all derived from the
// reservation history.
type CatalogHandler struct {
	service dashboard.DashboardUseCase
}

func NewCatalogHandler(service dashboard.DashboardUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/rooms", h.rooms)
	router.GET("/meal-plans", h.mealPlans)
	router.GET("/market-segments", h.marketSegments)
}

func (h *CatalogHandler) rooms(c *gin.Context) {
	out, err := h.service.RoomTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) mealPlans(c *gin.Context) {
	out, err := h.service.MealPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) marketSegments(c *gin.Context) {
	out, err := h.service.MarketSegments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
