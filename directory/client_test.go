package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-admin-backend/workflow"
)

func TestClientCreateGuestDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/huespedes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 42, "nombre": "Ana", "apellido": "Diaz"}`))
	}))
	defer srv.Close()

	guest, err := NewClient(srv.URL).CreateGuest(context.Background(), workflow.CreateGuestPayload{
		Nombre: "Ana", Apellido: "Diaz", NumeroDocumento: "30123456",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), guest.ID)
	assert.Equal(t, "Ana", guest.Nombre)
}

func TestClientFieldErrorsBecomeRemoteValidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors": {"NumeroDocumento": ["Documento inválido"]}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).CreateGuest(context.Background(), workflow.CreateGuestPayload{})

	var verr *workflow.RemoteValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Documento inválido"}, verr.Errors["NumeroDocumento"])
}

func TestClientMessageBecomesRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "La habitación no está disponible"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).CreateReservation(context.Background(), workflow.CreateReservationPayload{})

	var rerr *workflow.RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "La habitación no está disponible", rerr.Msg)
}

func TestClientConflictStatusBecomesConflictError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "Fechas ocupadas"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).CreateReservation(context.Background(), workflow.CreateReservationPayload{})

	var cerr *workflow.RemoteConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Fechas ocupadas", cerr.Msg)
}

func TestClientFieldErrorsWinOverConflictStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "x", "errors": {"FechaEntrada": ["Fecha inválida"]}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).CreateReservation(context.Background(), workflow.CreateReservationPayload{})

	var verr *workflow.RemoteValidationError
	require.ErrorAs(t, err, &verr)
}

func TestClientNoResponseBecomesConnectivityError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewClient(srv.URL).CreateReservation(context.Background(), workflow.CreateReservationPayload{})

	var cerr *workflow.ConnectivityError
	require.ErrorAs(t, err, &cerr)
	assert.Error(t, cerr.Err)
}

func TestClientListRooms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/habitaciones", r.URL.Path)
		w.Write([]byte(`[{"id": 1, "numeroHabitacion": "101"}, {"id": 2, "numeroHabitacion": "102"}]`))
	}))
	defer srv.Close()

	rooms, err := NewClient(srv.URL).ListRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].NumeroHabitacion)
}
