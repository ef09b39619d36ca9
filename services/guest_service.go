package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"hotel-admin-backend/models"

	"gorm.io/gorm"
)

var guestEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// Create validates and persists a guest. Mandatory fields missing or a
// malformed email come back as FieldErrors so the console can highlight the
// offending inputs.
func (s *GuestService) Create(g *models.Guest) error {
	errs := FieldErrors{}
	if strings.TrimSpace(g.Nombre) == "" {
		errs["Nombre"] = append(errs["Nombre"], "El nombre es obligatorio.")
	}
	if strings.TrimSpace(g.Apellido) == "" {
		errs["Apellido"] = append(errs["Apellido"], "El apellido es obligatorio.")
	}
	if strings.TrimSpace(g.NumeroDocumento) == "" {
		errs["NumeroDocumento"] = append(errs["NumeroDocumento"], "El número de documento es obligatorio.")
	}
	if g.Email != nil && !guestEmailPattern.MatchString(*g.Email) {
		errs["Email"] = append(errs["Email"], "El email no tiene un formato válido.")
	}
	if len(errs) > 0 {
		return errs
	}

	g.Nombre = strings.TrimSpace(g.Nombre)
	g.Apellido = strings.TrimSpace(g.Apellido)
	g.NumeroDocumento = strings.TrimSpace(g.NumeroDocumento)

	if err := s.DB.Create(g).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

func (s *GuestService) GetByID(id uint) (models.Guest, error) {
	var g models.Guest
	if err := s.DB.First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return g, fmt.Errorf("guest_not_found")
		}
		return g, fmt.Errorf("failed to retrieve guest: %w", err)
	}
	return g, nil
}

func (s *GuestService) List() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.Order("created_at DESC").Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve guests: %w", err)
	}
	return guests, nil
}
