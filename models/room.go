package models

import (
	"time"

	"gorm.io/gorm"
)

// Room estados as the console renders them.
const (
	EstadoDisponible    = "disponible"
	EstadoOcupada       = "ocupada"
	EstadoMantenimiento = "mantenimiento"
	EstadoReservada     = "reservada"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	NumeroHabitacion string  `gorm:"column:numero_habitacion;uniqueIndex;size:20" json:"numeroHabitacion"`
	Piso             int     `json:"piso"`
	PrecioBase       float64 `gorm:"column:precio_base" json:"precioBase"`
	Capacidad        int     `gorm:"default:1" json:"capacidad"`
	Descripcion      string  `gorm:"type:text" json:"descripcion"`
	Estado           string  `gorm:"size:32;default:disponible" json:"estado"`

	TipoHabitacionID uint     `gorm:"column:tipo_habitacion_id;index" json:"tipoHabitacionId"`
	TipoHabitacion   RoomType `gorm:"foreignKey:TipoHabitacionID" json:"tipoHabitacion"`

	Fotos     []RoomPhoto `gorm:"foreignKey:RoomID" json:"fotos"`
	Servicios []Amenity   `gorm:"many2many:room_amenities" json:"servicios"`

	CreatedAt time.Time      `json:"creadoEn"`
	UpdatedAt time.Time      `json:"actualizadoEn"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type RoomPhoto struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	RoomID      uint    `gorm:"index" json:"-"`
	URL         string  `gorm:"size:255" json:"url"`
	Descripcion *string `gorm:"size:255" json:"descripcion"`
	EsPrincipal bool    `gorm:"column:es_principal;default:false" json:"esPrincipal"`
}
