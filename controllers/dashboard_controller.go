package controllers

import (
	"net/http"

	"hotel-admin-backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardSvc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{DashboardSvc: svc}
}

// GET /api/dashboard/estadisticas
func (ct *DashboardController) GetStats(c *gin.Context) {
	stats, err := ct.DashboardSvc.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/dashboard/habitaciones-por-estado
func (ct *DashboardController) GetRoomsByEstado(c *gin.Context) {
	counts, err := ct.DashboardSvc.RoomsByEstado()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// GET /api/dashboard/habitaciones-recientes
func (ct *DashboardController) GetRecentRooms(c *gin.Context) {
	rooms, err := ct.DashboardSvc.RecentRooms()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
