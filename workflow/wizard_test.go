package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-admin-backend/models"
)

type fakeDirectory struct {
	createGuestFn       func(CreateGuestPayload) (models.Guest, error)
	createReservationFn func(CreateReservationPayload) (models.Reservation, error)
	listRoomsFn         func() ([]models.Room, error)

	guestCalls       int
	reservationCalls int
}

func (f *fakeDirectory) CreateGuest(_ context.Context, p CreateGuestPayload) (models.Guest, error) {
	f.guestCalls++
	if f.createGuestFn != nil {
		return f.createGuestFn(p)
	}
	return models.Guest{ID: 1}, nil
}

func (f *fakeDirectory) CreateReservation(_ context.Context, p CreateReservationPayload) (models.Reservation, error) {
	f.reservationCalls++
	if f.createReservationFn != nil {
		return f.createReservationFn(p)
	}
	return models.Reservation{ID: 1}, nil
}

func (f *fakeDirectory) ListRooms(_ context.Context) ([]models.Room, error) {
	if f.listRoomsFn != nil {
		return f.listRoomsFn()
	}
	return []models.Room{{ID: 101, NumeroHabitacion: "101"}}, nil
}

func validGuest() GuestInput {
	return GuestInput{
		Nombre:          "Ana",
		Apellido:        "Diaz",
		NumeroDocumento: "30123456",
		TipoDocumento:   "DNI",
	}
}

func validBooking() BookingInput {
	return BookingInput{
		HabitacionID:    101,
		FechaEntrada:    "2026-09-10",
		FechaSalida:     "2026-09-12",
		NumeroHuespedes: 2,
	}
}

func TestNewStartsAtStepOneWithDefaults(t *testing.T) {
	w := New(&fakeDirectory{})
	snap := w.Snapshot()

	assert.Equal(t, StepAwaitingGuest, snap.Step)
	assert.False(t, snap.Busy)
	assert.Empty(t, snap.ErrorMessage)
	assert.Equal(t, DefaultDocumentType, snap.GuestForm.TipoDocumento)
	assert.Equal(t, 1, snap.BookingForm.NumeroHuespedes)
	assert.Zero(t, snap.GuestID)
}

func TestSubmitGuestDetailsAdvancesOnSuccess(t *testing.T) {
	dir := &fakeDirectory{
		createGuestFn: func(p CreateGuestPayload) (models.Guest, error) {
			assert.Equal(t, "Ana", p.Nombre)
			require.NotNil(t, p.TipoDocumento)
			assert.Equal(t, "DNI", *p.TipoDocumento)
			assert.Nil(t, p.Email)
			return models.Guest{ID: 42}, nil
		},
	}
	w := New(dir)

	err := w.SubmitGuestDetails(context.Background(), validGuest())
	require.NoError(t, err)

	snap := w.Snapshot()
	assert.Equal(t, StepAwaitingBooking, snap.Step)
	assert.Equal(t, uint(42), snap.GuestID)
	assert.Empty(t, snap.ErrorMessage)
	assert.False(t, snap.Busy)
}

func TestSubmitGuestDetailsRejectsIncompleteForm(t *testing.T) {
	dir := &fakeDirectory{}
	w := New(dir)

	in := validGuest()
	in.Apellido = "  "
	err := w.SubmitGuestDetails(context.Background(), in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "apellido")
	assert.Zero(t, dir.guestCalls)

	snap := w.Snapshot()
	assert.Equal(t, StepAwaitingGuest, snap.Step)
	assert.Equal(t, "Por favor complete los datos obligatorios del huésped.", snap.ErrorMessage)
}

func TestSubmitGuestDetailsRejectsMalformedEmail(t *testing.T) {
	dir := &fakeDirectory{}
	w := New(dir)

	in := validGuest()
	in.Email = "ana-at-example"
	err := w.SubmitGuestDetails(context.Background(), in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Zero(t, dir.guestCalls)
}

func TestSubmitGuestDetailsRemoteFailureKeepsStep(t *testing.T) {
	tests := []struct {
		name    string
		fail    error
		message string
	}{
		{
			name:    "remote message",
			fail:    &RemoteError{Msg: "El documento ya está registrado"},
			message: "El documento ya está registrado",
		},
		{
			name:    "field errors",
			fail:    &RemoteValidationError{Errors: map[string][]string{"NumeroDocumento": {"Documento inválido"}}},
			message: "Errores: Documento inválido",
		},
		{
			name:    "no response falls to generic",
			fail:    &ConnectivityError{Err: errors.New("dial tcp: refused")},
			message: "Error al registrar el huésped. Intente nuevamente.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := &fakeDirectory{
				createGuestFn: func(CreateGuestPayload) (models.Guest, error) {
					return models.Guest{}, tc.fail
				},
			}
			w := New(dir)

			err := w.SubmitGuestDetails(context.Background(), validGuest())
			require.Error(t, err)

			snap := w.Snapshot()
			assert.Equal(t, StepAwaitingGuest, snap.Step)
			assert.Zero(t, snap.GuestID)
			assert.Equal(t, tc.message, snap.ErrorMessage)
			assert.False(t, snap.Busy)
		})
	}
}

func TestSubmitBookingWithoutGuestForcesStepOne(t *testing.T) {
	dir := &fakeDirectory{}
	w := New(dir)

	// even a fully valid booking form must not reach the directory
	err := w.SubmitBookingDetails(context.Background(), validBooking())

	var serr *StateError
	require.ErrorAs(t, err, &serr)
	assert.Zero(t, dir.reservationCalls)

	snap := w.Snapshot()
	assert.Equal(t, StepAwaitingGuest, snap.Step)
	assert.Equal(t, "Error: No se ha identificado al huésped. Vuelva al paso 1.", snap.ErrorMessage)
}

func TestSubmitBookingValidatesDatesAndRoom(t *testing.T) {
	dir := &fakeDirectory{}
	w := New(dir)
	require.NoError(t, w.SubmitGuestDetails(context.Background(), validGuest()))

	in := validBooking()
	in.FechaSalida = ""
	err := w.SubmitBookingDetails(context.Background(), in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Por favor seleccione fechas y habitación.", w.Snapshot().ErrorMessage)

	in = validBooking()
	in.HabitacionID = 0
	err = w.SubmitBookingDetails(context.Background(), in)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Por favor seleccione una habitación.", w.Snapshot().ErrorMessage)

	assert.Zero(t, dir.reservationCalls)
	assert.Equal(t, StepAwaitingBooking, w.Snapshot().Step)
}

func TestSubmitBookingErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		fail    error
		message string
	}{
		{
			name:    "remote message wins",
			fail:    &RemoteError{Msg: "La habitación no está disponible en esas fechas"},
			message: "La habitación no está disponible en esas fechas",
		},
		{
			name: "field errors flattened in field order",
			fail: &RemoteValidationError{Errors: map[string][]string{
				"FechaSalida":  {"La salida debe ser posterior"},
				"FechaEntrada": {"Fecha inválida"},
			}},
			message: "Errores: Fecha inválida, La salida debe ser posterior",
		},
		{
			name:    "no response",
			fail:    &ConnectivityError{Err: errors.New("dial tcp: refused")},
			message: "No se pudo conectar con el servidor. Verifique su conexión.",
		},
		{
			name:    "bare conflict falls to generic",
			fail:    &RemoteConflictError{},
			message: "Error al crear la reserva. Verifique disponibilidad.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := &fakeDirectory{
				createReservationFn: func(CreateReservationPayload) (models.Reservation, error) {
					return models.Reservation{}, tc.fail
				},
			}
			w := New(dir)
			require.NoError(t, w.SubmitGuestDetails(context.Background(), validGuest()))

			err := w.SubmitBookingDetails(context.Background(), validBooking())
			require.Error(t, err)

			snap := w.Snapshot()
			assert.Equal(t, StepAwaitingBooking, snap.Step)
			assert.Equal(t, tc.message, snap.ErrorMessage)
		})
	}
}

func TestCompletedBookingKeepsDataThenResets(t *testing.T) {
	dir := &fakeDirectory{
		createGuestFn: func(CreateGuestPayload) (models.Guest, error) {
			return models.Guest{ID: 7}, nil
		},
		createReservationFn: func(p CreateReservationPayload) (models.Reservation, error) {
			assert.Equal(t, uint(7), p.HuespedID)
			assert.Equal(t, uint(101), p.HabitacionID)
			return models.Reservation{ID: 55}, nil
		},
	}
	w := New(dir)

	require.NoError(t, w.SubmitGuestDetails(context.Background(), validGuest()))
	require.NoError(t, w.SubmitBookingDetails(context.Background(), validBooking()))

	// the confirmation view still sees the submitted data
	snap := w.Snapshot()
	assert.Equal(t, StepCompleted, snap.Step)
	assert.Equal(t, "Ana", snap.GuestForm.Nombre)
	assert.Equal(t, "2026-09-10", snap.BookingForm.FechaEntrada)

	// after the deferred reset only the step remains
	time.Sleep(3 * resetDelay)
	snap = w.Snapshot()
	assert.Equal(t, StepCompleted, snap.Step)
	assert.Zero(t, snap.GuestID)
	assert.Equal(t, GuestInput{TipoDocumento: DefaultDocumentType}, snap.GuestForm)
	assert.Equal(t, BookingInput{NumeroHuespedes: 1}, snap.BookingForm)
}

func TestStartNewResetsAndReloadsRooms(t *testing.T) {
	rooms := []models.Room{{ID: 1, NumeroHabitacion: "101"}}
	dir := &fakeDirectory{
		listRoomsFn: func() ([]models.Room, error) { return rooms, nil },
	}
	w := New(dir)

	require.NoError(t, w.SubmitGuestDetails(context.Background(), validGuest()))
	require.NoError(t, w.SubmitBookingDetails(context.Background(), validBooking()))

	w.StartNew(context.Background())

	snap := w.Snapshot()
	assert.Equal(t, StepAwaitingGuest, snap.Step)
	assert.Empty(t, snap.ErrorMessage)
	assert.Zero(t, snap.GuestID)
	assert.Equal(t, GuestInput{TipoDocumento: DefaultDocumentType}, snap.GuestForm)
	assert.Equal(t, BookingInput{NumeroHuespedes: 1}, snap.BookingForm)
	assert.Len(t, snap.Rooms, 1)
}

func TestLoadRoomsFailureOnlySetsMessage(t *testing.T) {
	dir := &fakeDirectory{
		listRoomsFn: func() ([]models.Room, error) { return nil, errors.New("boom") },
	}
	w := New(dir)
	w.LoadRooms(context.Background())

	snap := w.Snapshot()
	assert.Equal(t, StepAwaitingGuest, snap.Step)
	assert.Equal(t, "No se pudieron cargar las habitaciones disponibles.", snap.ErrorMessage)
	assert.Empty(t, snap.Rooms)
}
