package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Season (temporada) multiplies room prices inside its date range.
// RoomTypePrices optionally stores per-type overrides as raw JSON, managed
// from the settings page.
type Season struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nombre              string    `gorm:"size:150" json:"nombre"`
	Descripcion         string    `gorm:"size:255" json:"descripcion,omitempty"`
	FechaInicio         time.Time `gorm:"column:fecha_inicio;index" json:"fechaInicio"`
	FechaFin            time.Time `gorm:"column:fecha_fin;index" json:"fechaFin"`
	FactorMultiplicador float64   `gorm:"column:factor_multiplicador;default:1" json:"factorMultiplicador"`
	Activo              bool      `gorm:"default:true" json:"activo"`

	RoomTypePrices datatypes.JSON `gorm:"column:habitacion_precios" json:"habitacionPrecios,omitempty"`

	CreatedAt time.Time      `json:"creadoEn"`
	UpdatedAt time.Time      `json:"actualizadoEn"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
