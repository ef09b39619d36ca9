package controllers

import (
	"net/http"

	"hotel-admin-backend/services"

	"github.com/gin-gonic/gin"
)

type SeasonController struct {
	SeasonSvc *services.SeasonService
}

func NewSeasonController(svc *services.SeasonService) *SeasonController {
	return &SeasonController{SeasonSvc: svc}
}

// SeasonRequest matches the settings page's TemporadaCreateDto.
type SeasonRequest struct {
	Nombre              string  `json:"nombre"`
	Descripcion         string  `json:"descripcion"`
	FechaInicio         string  `json:"fechaInicio"`
	FechaFin            string  `json:"fechaFin"`
	FactorMultiplicador float64 `json:"factorMultiplicador"`
	Activo              bool    `json:"activo"`
}

func (r SeasonRequest) params() services.SeasonParams {
	return services.SeasonParams{
		Nombre:              r.Nombre,
		Descripcion:         r.Descripcion,
		FechaInicio:         r.FechaInicio,
		FechaFin:            r.FechaFin,
		FactorMultiplicador: r.FactorMultiplicador,
		Activo:              r.Activo,
	}
}

// GET /api/temporadas
func (ct *SeasonController) GetSeasons(c *gin.Context) {
	seasons, err := ct.SeasonSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, seasons)
}

// POST /api/temporadas
func (ct *SeasonController) CreateSeason(c *gin.Context) {
	var req SeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload inválido"})
		return
	}

	season, err := ct.SeasonSvc.Create(req.params())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, season)
}

// PUT /api/temporadas/:id
func (ct *SeasonController) UpdateSeason(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload inválido"})
		return
	}

	season, err := ct.SeasonSvc.Update(id, req.params())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, season)
}

// DELETE /api/temporadas/:id
func (ct *SeasonController) DeleteSeason(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ct.SeasonSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
