package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-admin-backend/models"

	"gorm.io/gorm"
)

type SeasonService struct {
	DB *gorm.DB
}

func NewSeasonService(db *gorm.DB) *SeasonService {
	return &SeasonService{DB: db}
}

// SeasonParams is the settings-page payload for creating or updating a
// season. Dates arrive as "2006-01-02".
type SeasonParams struct {
	Nombre              string
	Descripcion         string
	FechaInicio         string
	FechaFin            string
	FactorMultiplicador float64
	Activo              bool
}

func (s *SeasonService) List() ([]models.Season, error) {
	var seasons []models.Season
	if err := s.DB.Order("fecha_inicio ASC").Find(&seasons).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve seasons: %w", err)
	}
	return seasons, nil
}

func (s *SeasonService) Create(p SeasonParams) (models.Season, error) {
	season, err := s.validate(p)
	if err != nil {
		return season, err
	}
	if err := s.DB.Create(&season).Error; err != nil {
		return season, fmt.Errorf("failed to create season: %w", err)
	}
	return season, nil
}

func (s *SeasonService) Update(id uint, p SeasonParams) (models.Season, error) {
	var existing models.Season
	if err := s.DB.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return existing, fmt.Errorf("season_not_found")
		}
		return existing, fmt.Errorf("failed to retrieve season: %w", err)
	}

	season, err := s.validate(p)
	if err != nil {
		return existing, err
	}

	existing.Nombre = season.Nombre
	existing.Descripcion = season.Descripcion
	existing.FechaInicio = season.FechaInicio
	existing.FechaFin = season.FechaFin
	existing.FactorMultiplicador = season.FactorMultiplicador
	existing.Activo = season.Activo

	if err := s.DB.Save(&existing).Error; err != nil {
		return existing, fmt.Errorf("failed to update season: %w", err)
	}
	return existing, nil
}

func (s *SeasonService) Delete(id uint) error {
	result := s.DB.Delete(&models.Season{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete season: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("season_not_found")
	}
	return nil
}

func (s *SeasonService) validate(p SeasonParams) (models.Season, error) {
	var season models.Season

	if strings.TrimSpace(p.Nombre) == "" {
		return season, fmt.Errorf("validation: el nombre de la temporada es obligatorio")
	}
	if p.FactorMultiplicador <= 0 {
		return season, fmt.Errorf("validation: el factor multiplicador debe ser mayor a cero")
	}

	inicio, err := time.ParseInLocation(dateLayout, p.FechaInicio, time.UTC)
	if err != nil {
		return season, fmt.Errorf("validation: fecha de inicio inválida")
	}
	fin, err := time.ParseInLocation(dateLayout, p.FechaFin, time.UTC)
	if err != nil {
		return season, fmt.Errorf("validation: fecha de fin inválida")
	}
	if fin.Before(inicio) {
		return season, fmt.Errorf("validation: la fecha de fin debe ser posterior a la fecha de inicio")
	}

	return models.Season{
		Nombre:              strings.TrimSpace(p.Nombre),
		Descripcion:         strings.TrimSpace(p.Descripcion),
		FechaInicio:         inicio,
		FechaFin:            fin,
		FactorMultiplicador: p.FactorMultiplicador,
		Activo:              p.Activo,
	}, nil
}
