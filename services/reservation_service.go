package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-admin-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// CreateReservationParams is the create payload after transport decoding.
type CreateReservationParams struct {
	HabitacionID    uint
	HuespedID       uint
	FechaEntrada    string
	FechaSalida     string
	NumeroHuespedes int
	Observaciones   *string
}

// Create validates availability and persists a pending reservation with its
// computed nightly price, total and night count.
func (s *ReservationService) Create(p CreateReservationParams) (models.Reservation, error) {
	var res models.Reservation

	if p.HabitacionID == 0 {
		return res, fmt.Errorf("validation: debe seleccionar una habitación")
	}
	if p.HuespedID == 0 {
		return res, fmt.Errorf("validation: debe identificar al huésped")
	}

	entrada, err := time.ParseInLocation(dateLayout, p.FechaEntrada, time.UTC)
	if err != nil {
		return res, fmt.Errorf("validation: fecha de entrada inválida")
	}
	salida, err := time.ParseInLocation(dateLayout, p.FechaSalida, time.UTC)
	if err != nil {
		return res, fmt.Errorf("validation: fecha de salida inválida")
	}
	if !salida.After(entrada) {
		return res, fmt.Errorf("validation: la fecha de salida debe ser posterior a la fecha de entrada")
	}
	if p.NumeroHuespedes < 1 {
		p.NumeroHuespedes = 1
	}

	var room models.Room
	if err := s.DB.Preload("TipoHabitacion").First(&room, p.HabitacionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, fmt.Errorf("validation: habitación no encontrada")
		}
		return res, fmt.Errorf("db error checking room %d: %w", p.HabitacionID, err)
	}
	if room.Capacidad > 0 && p.NumeroHuespedes > room.Capacidad {
		return res, fmt.Errorf("validation: el número de huéspedes excede la capacidad de la habitación (%d)", room.Capacidad)
	}

	var guest models.Guest
	if err := s.DB.First(&guest, p.HuespedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, fmt.Errorf("validation: huésped no encontrado")
		}
		return res, fmt.Errorf("db error checking guest %d: %w", p.HuespedID, err)
	}

	// Availability uses the standard exclusive-checkout overlap: a stay
	// ending on D does not block another starting on D. The calendar
	// projector's inclusive rendering is display-only.
	var overlapping int64
	if err := s.DB.Model(&models.Reservation{}).
		Where("habitacion_id = ? AND estado <> ?", p.HabitacionID, models.ReservaCancelada).
		Where("fecha_entrada < ? AND fecha_salida > ?", salida, entrada).
		Count(&overlapping).Error; err != nil {
		return res, fmt.Errorf("db error checking availability: %w", err)
	}
	if overlapping > 0 {
		return res, fmt.Errorf("conflict: la habitación no está disponible en las fechas seleccionadas")
	}

	seasons, err := s.activeSeasons()
	if err != nil {
		return res, err
	}

	nights := ComputeNights(entrada, salida)
	nightly := NightlyRate(room.PrecioBase, room.TipoHabitacion.FactorTipo, SeasonFactor(seasons, entrada))

	res = models.Reservation{
		HabitacionID:     p.HabitacionID,
		HuespedID:        p.HuespedID,
		FechaEntrada:     entrada,
		FechaSalida:      salida,
		NumeroNoches:     nights,
		NumeroHuespedes:  p.NumeroHuespedes,
		Estado:           models.ReservaPendiente,
		PrecioPorNoche:   nightly,
		PrecioTotal:      nightly * float64(nights),
		Observaciones:    p.Observaciones,
		CodigoReferencia: uuid.NewString(),
	}

	if err := s.DB.Create(&res).Error; err != nil {
		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	res.Habitacion = room
	res.Huesped = guest
	fillDisplayNames(&res)
	return res, nil
}

// List returns all reservations, newest first, with display names filled.
func (s *ReservationService) List() ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.
		Preload("Habitacion").
		Preload("Huesped").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	for i := range list {
		fillDisplayNames(&list[i])
	}
	return list, nil
}

func (s *ReservationService) GetByID(id uint) (models.Reservation, error) {
	var res models.Reservation
	if err := s.DB.
		Preload("Habitacion.TipoHabitacion").
		Preload("Huesped").
		First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, fmt.Errorf("reservation_not_found")
		}
		return res, fmt.Errorf("failed to retrieve reservation: %w", err)
	}
	fillDisplayNames(&res)
	return res, nil
}

// Confirm moves a pending reservation to confirmada.
func (s *ReservationService) Confirm(id uint) (models.Reservation, error) {
	return s.transition(id, models.ReservaConfirmada)
}

// Cancel moves a pending reservation to cancelada.
func (s *ReservationService) Cancel(id uint) (models.Reservation, error) {
	return s.transition(id, models.ReservaCancelada)
}

// transition enforces the lifecycle: only pending reservations move.
func (s *ReservationService) transition(id uint, estado string) (models.Reservation, error) {
	var res models.Reservation

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&res, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("reservation_not_found")
			}
			return err
		}
		if res.Estado != models.ReservaPendiente {
			return fmt.Errorf("conflict: la reserva no está pendiente (estado actual: %s)", res.Estado)
		}
		return tx.Model(&res).Update("estado", estado).Error
	})
	if err != nil {
		return res, err
	}

	return s.GetByID(id)
}

func (s *ReservationService) Delete(id uint) error {
	result := s.DB.Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reservation_not_found")
	}
	return nil
}

func (s *ReservationService) activeSeasons() ([]models.Season, error) {
	var seasons []models.Season
	if err := s.DB.Where("activo = ?", true).Find(&seasons).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve seasons: %w", err)
	}
	return seasons, nil
}

func fillDisplayNames(r *models.Reservation) {
	if r.Habitacion.ID != 0 {
		r.NombreHabitacion = r.Habitacion.NumeroHabitacion
	}
	if r.Huesped.ID != 0 {
		r.NombreHuesped = r.Huesped.NombreCompleto()
	}
}
