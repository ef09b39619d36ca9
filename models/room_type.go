package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType carries the type factor applied on top of a room's base price
// when quoting a reservation.
type RoomType struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Nombre      string  `gorm:"size:100;uniqueIndex" json:"nombre"`
	Descripcion string  `gorm:"size:255" json:"descripcion"`
	Capacidad   int     `gorm:"default:2" json:"capacidad"`
	FactorTipo  float64 `gorm:"column:factor_tipo;default:1" json:"factorTipo"`
	Activo      bool    `gorm:"default:true" json:"activo"`

	CreatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
