package controllers

import (
	"fmt"
	"net/http"

	"hotel-admin-backend/services"
	"hotel-admin-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

// CreateReservationRequest matches the console's ReservaCreateDto.
type CreateReservationRequest struct {
	HabitacionID    uint    `json:"HabitacionId"`
	HuespedID       uint    `json:"HuespedId"`
	FechaEntrada    string  `json:"FechaEntrada"`
	FechaSalida     string  `json:"FechaSalida"`
	NumeroHuespedes int     `json:"NumeroHuespedes"`
	Observaciones   *string `json:"Observaciones"`
}

// POST /api/reservas
func (ct *ReservationController) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload inválido"})
		return
	}

	res, err := ct.ReservationSvc.Create(services.CreateReservationParams{
		HabitacionID:    req.HabitacionID,
		HuespedID:       req.HuespedID,
		FechaEntrada:    req.FechaEntrada,
		FechaSalida:     req.FechaSalida,
		NumeroHuespedes: req.NumeroHuespedes,
		Observaciones:   req.Observaciones,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GET /api/reservas
func (ct *ReservationController) GetReservations(c *gin.Context) {
	list, err := ct.ReservationSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/reservas/:id
func (ct *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := ct.ReservationSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PATCH /api/reservas/:id/confirmar
func (ct *ReservationController) ConfirmReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := ct.ReservationSvc.Confirm(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PATCH /api/reservas/:id/cancelar
func (ct *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := ct.ReservationSvc.Cancel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /api/reservas/:id
func (ct *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ct.ReservationSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/reservas/:id/voucher
// Streams the printable confirmation voucher as PDF.
func (ct *ReservationController) ReservationVoucher(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := ct.ReservationSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	buf, err := utils.BuildReservationVoucher(res)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "no se pudo generar el voucher")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=reserva-%d.pdf", res.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
