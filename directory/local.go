// Package directory provides the wizard's view of the booking directory:
// an in-process adapter over the gorm services, and an HTTP client for a
// remote directory. Both surface failures as workflow's typed errors.
package directory

import (
	"context"
	"errors"

	"hotel-admin-backend/models"
	"hotel-admin-backend/services"
	"hotel-admin-backend/workflow"
)

// Local implements workflow.Directory against the service layer of this
// process.
type Local struct {
	Guests       *services.GuestService
	Reservations *services.ReservationService
	Rooms        *services.RoomService
}

func NewLocal(g *services.GuestService, r *services.ReservationService, rm *services.RoomService) *Local {
	return &Local{Guests: g, Reservations: r, Rooms: rm}
}

func (l *Local) CreateGuest(_ context.Context, p workflow.CreateGuestPayload) (models.Guest, error) {
	guest := models.Guest{
		Nombre:          p.Nombre,
		Apellido:        p.Apellido,
		NumeroDocumento: p.NumeroDocumento,
		TipoDocumento:   p.TipoDocumento,
		FechaNacimiento: p.FechaNacimiento,
		Telefono:        p.Telefono,
		Email:           p.Email,
	}
	if err := l.Guests.Create(&guest); err != nil {
		return models.Guest{}, classifyServiceError(err)
	}
	return guest, nil
}

func (l *Local) CreateReservation(_ context.Context, p workflow.CreateReservationPayload) (models.Reservation, error) {
	res, err := l.Reservations.Create(services.CreateReservationParams{
		HabitacionID:    p.HabitacionID,
		HuespedID:       p.HuespedID,
		FechaEntrada:    p.FechaEntrada,
		FechaSalida:     p.FechaSalida,
		NumeroHuespedes: p.NumeroHuespedes,
		Observaciones:   p.Observaciones,
	})
	if err != nil {
		return models.Reservation{}, classifyServiceError(err)
	}
	return res, nil
}

func (l *Local) ListRooms(_ context.Context) ([]models.Room, error) {
	rooms, err := l.Rooms.List()
	if err != nil {
		return nil, classifyServiceError(err)
	}
	return rooms, nil
}

// classifyServiceError maps service-layer conventions onto the wizard's
// error taxonomy, so the in-process directory rejects the same way the
// remote one does.
func classifyServiceError(err error) error {
	var fields services.FieldErrors
	if errors.As(err, &fields) {
		return &workflow.RemoteValidationError{Errors: fields}
	}
	if services.IsConflict(err) {
		return &workflow.RemoteConflictError{Msg: services.CleanMessage(err)}
	}
	if services.IsValidation(err) || services.IsNotFound(err) {
		return &workflow.RemoteError{Msg: services.CleanMessage(err)}
	}
	return &workflow.RemoteError{Msg: ""}
}
