package models

// Amenity (servicio) is a room feature shown on the room detail page.
type Amenity struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nombre      string `gorm:"size:100;uniqueIndex" json:"nombre"`
	Descripcion string `gorm:"size:255" json:"descripcion"`
	Activo      bool   `gorm:"default:true" json:"activo"`
}

func (Amenity) TableName() string { return "amenities" }
