package controllers

import (
	"net/http"

	"hotel-admin-backend/models"
	"hotel-admin-backend/services"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

// CreateGuestRequest matches the console's create payload (PascalCase, as
// the original API contract has it). Optional fields arrive as null.
type CreateGuestRequest struct {
	Nombre          string  `json:"Nombre"`
	Apellido        string  `json:"Apellido"`
	NumeroDocumento string  `json:"NumeroDocumento"`
	TipoDocumento   *string `json:"TipoDocumento"`
	Nacionalidad    *string `json:"Nacionalidad"`
	Direccion       *string `json:"Direccion"`
	FechaNacimiento *string `json:"FechaNacimiento"`
	Telefono        *string `json:"Telefono"`
	Email           *string `json:"Email"`
}

// POST /api/huespedes
func (ct *GuestController) CreateGuest(c *gin.Context) {
	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload inválido"})
		return
	}

	guest := models.Guest{
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		NumeroDocumento: req.NumeroDocumento,
		TipoDocumento:   req.TipoDocumento,
		Nacionalidad:    req.Nacionalidad,
		Direccion:       req.Direccion,
		FechaNacimiento: req.FechaNacimiento,
		Telefono:        req.Telefono,
		Email:           req.Email,
	}
	if err := ct.GuestSvc.Create(&guest); err != nil {
		respondServiceError(c, err)
		return
	}

	// The wizard reads the assigned id straight off this object.
	c.JSON(http.StatusCreated, guest)
}

// GET /api/huespedes
func (ct *GuestController) GetGuests(c *gin.Context) {
	guests, err := ct.GuestSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GET /api/huespedes/:id
func (ct *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	guest, err := ct.GuestSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}
