package models

import (
	"time"

	"gorm.io/gorm"
)

// Guest (huésped) is the person a reservation is booked for. Captured once
// per booking session by the reservation wizard and read-only afterwards.
type Guest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nombre          string  `gorm:"size:150" json:"nombre"`
	Apellido        string  `gorm:"size:150" json:"apellido"`
	NumeroDocumento string  `gorm:"column:numero_documento;size:50;index" json:"numeroDocumento"`
	TipoDocumento   *string `gorm:"column:tipo_documento;size:32" json:"tipoDocumento"`
	Nacionalidad    *string `gorm:"size:100" json:"nacionalidad"`
	Direccion       *string `gorm:"size:255" json:"direccion"`
	FechaNacimiento *string `gorm:"column:fecha_nacimiento;size:10" json:"fechaNacimiento"`
	Telefono        *string `gorm:"size:50" json:"telefono"`
	Email           *string `gorm:"size:190" json:"email"`

	CreatedAt time.Time      `json:"creadoEn"`
	UpdatedAt time.Time      `json:"actualizadoEn"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// NombreCompleto is what lists and vouchers display.
func (g Guest) NombreCompleto() string {
	return g.Nombre + " " + g.Apellido
}
