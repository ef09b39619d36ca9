package controllers

import (
	"net/http"

	"hotel-admin-backend/models"
	"hotel-admin-backend/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// RoomRequest matches the room form payload (PascalCase contract).
type RoomRequest struct {
	NumeroHabitacion string  `json:"NumeroHabitacion"`
	TipoHabitacionID uint    `json:"TipoHabitacionId"`
	Piso             int     `json:"Piso"`
	PrecioBase       float64 `json:"PrecioBase"`
	Capacidad        int     `json:"Capacidad"`
	Descripcion      string  `json:"Descripcion"`
	Estado           string  `json:"Estado"`
	ServiciosIDs     []uint  `json:"ServiciosIds"`
	Fotos            []struct {
		URL         string  `json:"Url"`
		Descripcion *string `json:"Descripcion"`
		EsPrincipal bool    `json:"EsPrincipal"`
	} `json:"Fotos"`
}

// GET /api/habitaciones
func (ct *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ct.RoomSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/habitaciones/:id
func (ct *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := ct.RoomSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// POST /api/habitaciones
func (ct *RoomController) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload inválido"})
		return
	}

	room := roomFromRequest(req)
	if err := ct.RoomSvc.Create(&room, req.ServiciosIDs); err != nil {
		respondServiceError(c, err)
		return
	}

	created, err := ct.RoomSvc.GetByID(room.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/habitaciones/:id
func (ct *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload inválido"})
		return
	}

	room, err := ct.RoomSvc.Update(id, roomFromRequest(req), req.ServiciosIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DELETE /api/habitaciones/:id
func (ct *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ct.RoomSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type bulkPricePayload struct {
	TipoHabitacionID uint    `json:"tipoHabitacionId"`
	NuevoPrecio      float64 `json:"nuevoPrecio"`
}

// PUT /api/habitaciones/precio-por-tipo
// Bulk base-price update for every room of one type, replacing the
// console's room-by-room PUT loop.
func (ct *RoomController) UpdatePriceByType(c *gin.Context) {
	var payload bulkPricePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload inválido"})
		return
	}

	updated, err := ct.RoomSvc.UpdatePriceByType(payload.TipoHabitacionID, payload.NuevoPrecio)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"habitacionesActualizadas": updated})
}

// GET /api/tipos-habitacion
func (ct *RoomController) GetRoomTypes(c *gin.Context) {
	tipos, err := ct.RoomSvc.ListRoomTypes()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tipos)
}

// GET /api/servicios
func (ct *RoomController) GetAmenities(c *gin.Context) {
	servicios, err := ct.RoomSvc.ListAmenities()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, servicios)
}

func roomFromRequest(req RoomRequest) models.Room {
	room := models.Room{
		NumeroHabitacion: req.NumeroHabitacion,
		TipoHabitacionID: req.TipoHabitacionID,
		Piso:             req.Piso,
		PrecioBase:       req.PrecioBase,
		Capacidad:        req.Capacidad,
		Descripcion:      req.Descripcion,
		Estado:           req.Estado,
	}
	for _, f := range req.Fotos {
		room.Fotos = append(room.Fotos, models.RoomPhoto{
			URL:         f.URL,
			Descripcion: f.Descripcion,
			EsPrincipal: f.EsPrincipal,
		})
	}
	return room
}
