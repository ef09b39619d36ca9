package services

import (
	"math"
	"time"

	"hotel-admin-backend/models"
)

// Pricing rules: a night costs the room's base price multiplied by the room
// type factor and by the strongest active season covering the check-in date.

// ComputeNights counts whole days between check-in and check-out. Callers
// must have validated that salida is after entrada.
func ComputeNights(entrada, salida time.Time) int {
	n := int(salida.Sub(entrada).Hours() / 24)
	if n <= 0 {
		n = 1
	}
	return n
}

// SeasonFactor returns the multiplier applied on a date: the highest factor
// among active seasons whose [inicio, fin] range contains it, or 1 when no
// season applies.
func SeasonFactor(seasons []models.Season, date time.Time) float64 {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	factor := 1.0
	for _, s := range seasons {
		if !s.Activo || s.FactorMultiplicador <= 0 {
			continue
		}
		inicio := time.Date(s.FechaInicio.Year(), s.FechaInicio.Month(), s.FechaInicio.Day(), 0, 0, 0, 0, time.UTC)
		fin := time.Date(s.FechaFin.Year(), s.FechaFin.Month(), s.FechaFin.Day(), 0, 0, 0, 0, time.UTC)
		if !day.Before(inicio) && !day.After(fin) && s.FactorMultiplicador > factor {
			factor = s.FactorMultiplicador
		}
	}
	return factor
}

// NightlyRate combines base price, room type factor and season factor,
// rounded to cents.
func NightlyRate(base, factorTipo, factorTemporada float64) float64 {
	if factorTipo <= 0 {
		factorTipo = 1
	}
	return math.Round(base*factorTipo*factorTemporada*100) / 100
}
