package services

import (
	"fmt"
	"math"
	"time"

	"hotel-admin-backend/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// DashboardStats matches what the dashboard page renders.
type DashboardStats struct {
	TotalHabitaciones         int64   `json:"totalHabitaciones"`
	HabitacionesDisponibles   int64   `json:"habitacionesDisponibles"`
	HabitacionesOcupadas      int64   `json:"habitacionesOcupadas"`
	HabitacionesMantenimiento int64   `json:"habitacionesMantenimiento"`
	PorcentajeOcupacion       int     `json:"porcentajeOcupacion"`
	ReservasActivas           int64   `json:"reservasActivas"`
	CheckInsHoy               int64   `json:"checkInsHoy"`
	CheckOutsHoy              int64   `json:"checkOutsHoy"`
	IngresosMes               float64 `json:"ingresosMes"`
}

// EstadoCount is one slice of the rooms-by-estado chart.
type EstadoCount struct {
	Estado   string `json:"estado"`
	Cantidad int64  `json:"cantidad"`
}

// Stats aggregates room and reservation figures for the dashboard. The
// occupancy percentage is rounded to the nearest whole number.
func (s *DashboardService) Stats() (DashboardStats, error) {
	var stats DashboardStats

	rooms := s.DB.Model(&models.Room{})
	if err := rooms.Count(&stats.TotalHabitaciones).Error; err != nil {
		return stats, fmt.Errorf("failed to count rooms: %w", err)
	}
	for estado, dst := range map[string]*int64{
		models.EstadoDisponible:    &stats.HabitacionesDisponibles,
		models.EstadoOcupada:       &stats.HabitacionesOcupadas,
		models.EstadoMantenimiento: &stats.HabitacionesMantenimiento,
	} {
		if err := s.DB.Model(&models.Room{}).Where("estado = ?", estado).Count(dst).Error; err != nil {
			return stats, fmt.Errorf("failed to count rooms by estado: %w", err)
		}
	}
	if stats.TotalHabitaciones > 0 {
		stats.PorcentajeOcupacion = int(math.Round(float64(stats.HabitacionesOcupadas) / float64(stats.TotalHabitaciones) * 100))
	}

	today := time.Now().UTC()
	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	active := s.DB.Model(&models.Reservation{}).
		Where("estado <> ?", models.ReservaCancelada).
		Where("fecha_salida >= ?", dayStart)
	if err := active.Count(&stats.ReservasActivas).Error; err != nil {
		return stats, fmt.Errorf("failed to count active reservations: %w", err)
	}

	if err := s.DB.Model(&models.Reservation{}).
		Where("estado <> ?", models.ReservaCancelada).
		Where("fecha_entrada >= ? AND fecha_entrada < ?", dayStart, dayEnd).
		Count(&stats.CheckInsHoy).Error; err != nil {
		return stats, fmt.Errorf("failed to count today check-ins: %w", err)
	}
	if err := s.DB.Model(&models.Reservation{}).
		Where("estado <> ?", models.ReservaCancelada).
		Where("fecha_salida >= ? AND fecha_salida < ?", dayStart, dayEnd).
		Count(&stats.CheckOutsHoy).Error; err != nil {
		return stats, fmt.Errorf("failed to count today check-outs: %w", err)
	}

	var ingresos *float64
	if err := s.DB.Model(&models.Reservation{}).
		Select("SUM(precio_total)").
		Where("estado <> ?", models.ReservaCancelada).
		Where("fecha_entrada >= ? AND fecha_entrada < ?", monthStart, monthEnd).
		Scan(&ingresos).Error; err != nil {
		return stats, fmt.Errorf("failed to sum month revenue: %w", err)
	}
	if ingresos != nil {
		stats.IngresosMes = *ingresos
	}

	return stats, nil
}

// RoomsByEstado returns room counts grouped by estado for the chart.
func (s *DashboardService) RoomsByEstado() ([]EstadoCount, error) {
	var out []EstadoCount
	if err := s.DB.Model(&models.Room{}).
		Select("estado, COUNT(*) AS cantidad").
		Group("estado").
		Order("estado ASC").
		Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to group rooms by estado: %w", err)
	}
	return out, nil
}

// RecentRooms returns the five most recently updated rooms.
func (s *DashboardService) RecentRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.
		Preload("TipoHabitacion").
		Order("updated_at DESC").
		Limit(5).
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve recent rooms: %w", err)
	}
	return rooms, nil
}
