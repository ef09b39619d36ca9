package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-admin-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// List returns the room catalog with type, photos and amenities loaded —
// the shape the availability list and the rooms page both consume.
func (s *RoomService) List() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.
		Preload("TipoHabitacion").
		Preload("Fotos").
		Preload("Servicios").
		Order("numero_habitacion ASC").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.
		Preload("TipoHabitacion").
		Preload("Fotos").
		Preload("Servicios").
		First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, fmt.Errorf("room_not_found")
		}
		return room, fmt.Errorf("failed to retrieve room: %w", err)
	}
	return room, nil
}

// Create persists a room and attaches the selected amenities.
func (s *RoomService) Create(room *models.Room, servicioIDs []uint) error {
	if strings.TrimSpace(room.NumeroHabitacion) == "" {
		return fmt.Errorf("validation: el número de habitación es obligatorio")
	}
	if room.PrecioBase <= 0 {
		return fmt.Errorf("validation: el precio base debe ser mayor a cero")
	}
	if room.TipoHabitacionID == 0 {
		return fmt.Errorf("validation: debe seleccionar un tipo de habitación")
	}

	var tipo models.RoomType
	if err := s.DB.First(&tipo, room.TipoHabitacionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("validation: tipo de habitación no encontrado")
		}
		return fmt.Errorf("db error checking room type: %w", err)
	}

	if room.Estado == "" {
		room.Estado = models.EstadoDisponible
	}
	if room.Capacidad <= 0 {
		room.Capacidad = tipo.Capacidad
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			lc := strings.ToLower(err.Error())
			if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
				return fmt.Errorf("conflict: ya existe una habitación con ese número")
			}
			return fmt.Errorf("failed to create room: %w", err)
		}
		return s.attachAmenities(tx, room, servicioIDs)
	})
}

// Update overwrites the editable fields and replaces the amenity set.
func (s *RoomService) Update(id uint, updated models.Room, servicioIDs []uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, fmt.Errorf("room_not_found")
		}
		return room, fmt.Errorf("failed to retrieve room: %w", err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		changes := map[string]interface{}{
			"numero_habitacion": updated.NumeroHabitacion,
			"piso":              updated.Piso,
			"precio_base":       updated.PrecioBase,
			"capacidad":         updated.Capacidad,
			"descripcion":       updated.Descripcion,
		}
		if updated.Estado != "" {
			changes["estado"] = updated.Estado
		}
		if updated.TipoHabitacionID != 0 {
			changes["tipo_habitacion_id"] = updated.TipoHabitacionID
		}
		if err := tx.Model(&room).Updates(changes).Error; err != nil {
			return fmt.Errorf("failed to update room: %w", err)
		}
		if servicioIDs != nil {
			return s.attachAmenities(tx, &room, servicioIDs)
		}
		return nil
	})
	if err != nil {
		return room, err
	}

	return s.GetByID(id)
}

func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("room_not_found")
	}
	return nil
}

// UpdatePriceByType sets the base price of every room of a type in one
// statement. Returns how many rooms changed.
func (s *RoomService) UpdatePriceByType(tipoID uint, precio float64) (int64, error) {
	if tipoID == 0 {
		return 0, fmt.Errorf("validation: debe indicar el tipo de habitación")
	}
	if precio <= 0 {
		return 0, fmt.Errorf("validation: el precio debe ser mayor a cero")
	}

	result := s.DB.Model(&models.Room{}).
		Where("tipo_habitacion_id = ?", tipoID).
		Update("precio_base", precio)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update prices: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *RoomService) ListRoomTypes() ([]models.RoomType, error) {
	var tipos []models.RoomType
	if err := s.DB.Where("activo = ?", true).Order("id ASC").Find(&tipos).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve room types: %w", err)
	}
	return tipos, nil
}

func (s *RoomService) ListAmenities() ([]models.Amenity, error) {
	var servicios []models.Amenity
	if err := s.DB.Where("activo = ?", true).Order("id ASC").Find(&servicios).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve amenities: %w", err)
	}
	return servicios, nil
}

func (s *RoomService) attachAmenities(tx *gorm.DB, room *models.Room, servicioIDs []uint) error {
	if servicioIDs == nil {
		return nil
	}
	var servicios []models.Amenity
	if len(servicioIDs) > 0 {
		if err := tx.Where("id IN ?", servicioIDs).Find(&servicios).Error; err != nil {
			return fmt.Errorf("db error loading amenities: %w", err)
		}
	}
	if err := tx.Model(room).Association("Servicios").Replace(servicios); err != nil {
		return fmt.Errorf("failed to attach amenities: %w", err)
	}
	return nil
}
