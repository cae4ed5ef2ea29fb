package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	service "invoice-dashboard-backend/internal/services/dashboard"
)

type DashboardHandler struct {
	service *service.Service
}

func NewDashboardHandler(s *service.Service) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) Cards(c *gin.Context) {
	data, err := h.service.CardData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *DashboardHandler) Revenue(c *gin.Context) {
	revenue, err := h.service.RevenueChart()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": revenue})
}

func (h *DashboardHandler) LatestInvoices(c *gin.Context) {
	latest, err := h.service.LatestInvoices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": latest})
}
