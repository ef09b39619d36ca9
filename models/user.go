package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RolAdmin = "admin"
	RolUser  = "user"
)

// User is an operator of the admin console, not a hotel guest.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Nombre    string         `gorm:"size:150" json:"nombre"`
	Apellido  string         `gorm:"size:150" json:"apellido"`
	Email     string         `gorm:"uniqueIndex;size:190" json:"email"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	Rol       string         `gorm:"size:32;default:user" json:"rol"`
	CreatedAt time.Time      `json:"creadoEn"`
	UpdatedAt time.Time      `json:"actualizadoEn"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
