package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation lifecycle. Transitions: pendiente -> confirmada,
// pendiente -> cancelada. Both happen outside the wizard.
const (
	ReservaPendiente  = "pendiente"
	ReservaConfirmada = "confirmada"
	ReservaCancelada  = "cancelada"
)

// Reservation binds one guest to one room over a date range. Prices and
// night count are computed at creation time and stored.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HabitacionID uint `gorm:"column:habitacion_id;index" json:"habitacionId"`
	HuespedID    uint `gorm:"column:huesped_id;index" json:"huespedId"`

	FechaEntrada time.Time `gorm:"column:fecha_entrada;index" json:"fechaEntrada"`
	FechaSalida  time.Time `gorm:"column:fecha_salida;index" json:"fechaSalida"`

	NumeroNoches     int     `gorm:"column:numero_noches" json:"numeroNoches"`
	NumeroHuespedes  int     `gorm:"column:numero_huespedes;default:1" json:"numeroHuespedes"`
	Estado           string  `gorm:"size:32;default:pendiente;index" json:"estado"`
	PrecioPorNoche   float64 `gorm:"column:precio_por_noche" json:"precioPorNoche"`
	PrecioTotal      float64 `gorm:"column:precio_total" json:"precioTotal"`
	Observaciones    *string `gorm:"type:text" json:"observaciones"`
	CodigoReferencia string  `gorm:"column:codigo_referencia;uniqueIndex;size:64" json:"codigoReferencia"`

	Habitacion Room  `gorm:"foreignKey:HabitacionID" json:"-"`
	Huesped    Guest `gorm:"foreignKey:HuespedID" json:"-"`

	// Display-only, filled when listing with relations loaded.
	NombreHabitacion string `gorm:"-" json:"nombreHabitacion,omitempty"`
	NombreHuesped    string `gorm:"-" json:"nombreHuesped,omitempty"`

	CreatedAt time.Time      `json:"creadoEn"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
