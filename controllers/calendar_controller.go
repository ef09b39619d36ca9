package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotel-admin-backend/calendar"
	"hotel-admin-backend/models"
	"hotel-admin-backend/services"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	ReservationSvc *services.ReservationService
}

func NewCalendarController(svc *services.ReservationService) *CalendarController {
	return &CalendarController{ReservationSvc: svc}
}

// calendarCell is one grid slot: a real day with its occupancy, or a
// leading placeholder (fecha null) aligning day 1 to its weekday column.
type calendarCell struct {
	Fecha    *time.Time           `json:"fecha"`
	EsHoy    bool                 `json:"esHoy"`
	Reservas []models.Reservation `json:"reservas"`
}

type calendarMonth struct {
	Anio       int            `json:"anio"`
	Mes        int            `json:"mes"`
	Titulo     string         `json:"titulo"`
	DiasSemana []string       `json:"diasSemana"`
	Celdas     []calendarCell `json:"celdas"`
}

// GET /api/calendario?anio=2026&mes=9
// Both params optional; defaults to the current month.
func (ct *CalendarController) GetMonth(c *gin.Context) {
	now := time.Now()
	anio, err := queryInt(c, "anio", now.Year())
	if err != nil || anio < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "año inválido"})
		return
	}
	mes, err := queryInt(c, "mes", int(now.Month()))
	if err != nil || mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "mes inválido"})
		return
	}

	reservations, err := ct.ReservationSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	p := calendar.NewProjector(anio, time.Month(mes))
	cells := p.Cells()

	out := calendarMonth{
		Anio:       p.Year(),
		Mes:        int(p.Month()),
		Titulo:     p.Label(),
		DiasSemana: calendar.WeekDays,
		Celdas:     make([]calendarCell, 0, len(cells)),
	}
	for _, cell := range cells {
		out.Celdas = append(out.Celdas, calendarCell{
			Fecha:    cell,
			EsHoy:    calendar.IsToday(cell),
			Reservas: calendar.ReservationsOn(cell, reservations),
		})
	}

	c.JSON(http.StatusOK, out)
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
