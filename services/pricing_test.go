package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel-admin-backend/models"
)

func TestComputeNights(t *testing.T) {
	entrada := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, ComputeNights(entrada, entrada.AddDate(0, 0, 1)))
	assert.Equal(t, 3, ComputeNights(entrada, entrada.AddDate(0, 0, 3)))
	// defensive floor when callers slip a same-day pair through
	assert.Equal(t, 1, ComputeNights(entrada, entrada))
}

func TestSeasonFactor(t *testing.T) {
	july := time.Date(2026, time.July, 15, 18, 0, 0, 0, time.UTC)

	seasons := []models.Season{
		{
			Nombre:              "Temporada alta",
			FechaInicio:         time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
			FechaFin:            time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
			FactorMultiplicador: 1.3,
			Activo:              true,
		},
		{
			Nombre:              "Promo inactiva",
			FechaInicio:         time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
			FechaFin:            time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC),
			FactorMultiplicador: 2.0,
			Activo:              false,
		},
		{
			Nombre:              "Evento",
			FechaInicio:         time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC),
			FechaFin:            time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC),
			FactorMultiplicador: 1.5,
			Activo:              true,
		},
	}

	// strongest active covering season wins; inactive ones never apply
	assert.Equal(t, 1.5, SeasonFactor(seasons, july))

	// boundary days are inside the range
	assert.Equal(t, 1.3, SeasonFactor(seasons, time.Date(2026, time.August, 31, 23, 0, 0, 0, time.UTC)))

	// outside every season
	assert.Equal(t, 1.0, SeasonFactor(seasons, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1.0, SeasonFactor(nil, july))
}

func TestNightlyRate(t *testing.T) {
	assert.Equal(t, 143.75, NightlyRate(100, 1.25, 1.15))
	assert.Equal(t, 100.0, NightlyRate(100, 1, 1))
	// rounded to cents
	assert.Equal(t, 36.66, NightlyRate(33.33, 1, 1.1))
	// zero factor falls back to 1
	assert.Equal(t, 120.0, NightlyRate(120, 0, 1))
}
