package workflow

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"hotel-admin-backend/logger"
	"hotel-admin-backend/models"
)

// Step of the reservation wizard. The sequence is strictly forward; the only
// way back to AwaitingGuest is StartNew (full reset) or a failed guest
// precondition.
type Step int

const (
	StepAwaitingGuest   Step = 1
	StepAwaitingBooking Step = 2
	StepCompleted       Step = 3
)

// DefaultDocumentType pre-fills the guest form.
const DefaultDocumentType = "DNI"

// resetDelay defers the post-success buffer reset so the confirmation view
// can still render the submitted data.
const resetDelay = 100 * time.Millisecond

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// GuestInput is the guest form buffer. Empty optional fields mean absent.
type GuestInput struct {
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	NumeroDocumento string `json:"numeroDocumento"`
	TipoDocumento   string `json:"tipoDocumento"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
}

// BookingInput is the booking form buffer. HabitacionID zero means no room
// selected.
type BookingInput struct {
	HabitacionID    uint   `json:"habitacionId"`
	FechaEntrada    string `json:"fechaEntrada"`
	FechaSalida     string `json:"fechaSalida"`
	NumeroHuespedes int    `json:"numeroHuespedes"`
	Observaciones   string `json:"observaciones"`
}

// CreateGuestPayload is the wire shape of a create-guest call. Optional
// fields are normalized to null when absent.
type CreateGuestPayload struct {
	Nombre          string  `json:"Nombre"`
	Apellido        string  `json:"Apellido"`
	NumeroDocumento string  `json:"NumeroDocumento"`
	TipoDocumento   *string `json:"TipoDocumento"`
	FechaNacimiento *string `json:"FechaNacimiento"`
	Telefono        *string `json:"Telefono"`
	Email           *string `json:"Email"`
}

// CreateReservationPayload is the wire shape of a create-reservation call,
// combining the held guest id with the booking form.
type CreateReservationPayload struct {
	HabitacionID    uint    `json:"HabitacionId"`
	HuespedID       uint    `json:"HuespedId"`
	FechaEntrada    string  `json:"FechaEntrada"`
	FechaSalida     string  `json:"FechaSalida"`
	NumeroHuespedes int     `json:"NumeroHuespedes"`
	Observaciones   *string `json:"Observaciones"`
}

// Directory is the external system of record the wizard talks to. Transport
// is the implementation's business; failures must come back as the typed
// errors of this package.
type Directory interface {
	CreateGuest(ctx context.Context, payload CreateGuestPayload) (models.Guest, error)
	CreateReservation(ctx context.Context, payload CreateReservationPayload) (models.Reservation, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
}

// Snapshot is the immutable view the wizard exposes to its caller.
type Snapshot struct {
	Step         Step          `json:"paso"`
	Busy         bool          `json:"cargando"`
	ErrorMessage string        `json:"mensajeError"`
	GuestID      uint          `json:"huespedId,omitempty"`
	Rooms        []models.Room `json:"habitaciones"`
	GuestForm    GuestInput    `json:"formularioHuesped"`
	BookingForm  BookingInput  `json:"formularioReserva"`
}

// Wizard drives the three-stage reservation workflow: guest capture, booking
// details, confirmation. Intermediate state lives only in memory; nothing is
// persisted until the directory calls succeed. The logical model is one
// operation at a time per session; the mutex only shields against the HTTP
// layer delivering concurrent requests.
type Wizard struct {
	mu  sync.Mutex
	dir Directory

	step       Step
	busy       bool
	errMessage string
	guestID    uint
	rooms      []models.Room

	guestForm   GuestInput
	bookingForm BookingInput

	resetTimer *time.Timer
}

// New returns a wizard at step 1 with default form buffers. Call LoadRooms
// (or StartNew) to populate the availability list.
func New(dir Directory) *Wizard {
	w := &Wizard{dir: dir, step: StepAwaitingGuest}
	w.resetForms()
	return w
}

// LoadRooms refreshes the room availability list. A failure sets the visible
// error message but never blocks the workflow.
func (w *Wizard) LoadRooms(ctx context.Context) {
	rooms, err := w.dir.ListRooms(ctx)
	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		logger.L().WithError(err).Warn("wizard: room refresh failed")
		w.errMessage = "No se pudieron cargar las habitaciones disponibles."
		return
	}
	w.rooms = rooms
}

// SubmitGuestDetails validates the guest form and issues the create-guest
// call. On success the wizard holds the assigned guest id and advances to
// AwaitingBooking; on any failure it stays at AwaitingGuest.
func (w *Wizard) SubmitGuestDetails(ctx context.Context, in GuestInput) error {
	w.mu.Lock()
	w.guestForm = in

	if fields := invalidGuestFields(in); len(fields) > 0 {
		w.errMessage = "Por favor complete los datos obligatorios del huésped."
		err := &ValidationError{Fields: fields, Msg: w.errMessage}
		w.mu.Unlock()
		return err
	}

	payload := CreateGuestPayload{
		Nombre:          in.Nombre,
		Apellido:        in.Apellido,
		NumeroDocumento: in.NumeroDocumento,
		TipoDocumento:   nilIfEmpty(in.TipoDocumento),
		FechaNacimiento: nilIfEmpty(in.FechaNacimiento),
		Telefono:        nilIfEmpty(in.Telefono),
		Email:           nilIfEmpty(in.Email),
	}
	w.busy = true
	w.mu.Unlock()

	guest, err := w.dir.CreateGuest(ctx, payload)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false
	if err != nil {
		w.errMessage = guestErrorMessage(err)
		return err
	}

	w.guestID = guest.ID
	w.errMessage = ""
	w.step = StepAwaitingBooking
	return nil
}

// SubmitBookingDetails validates the booking form and issues the
// create-reservation call with the held guest id. Invoked without a guest id
// it fails with StateError and forces the wizard back to AwaitingGuest,
// regardless of input validity.
func (w *Wizard) SubmitBookingDetails(ctx context.Context, in BookingInput) error {
	w.mu.Lock()
	w.bookingForm = in

	if w.guestID == 0 {
		w.step = StepAwaitingGuest
		w.errMessage = "Error: No se ha identificado al huésped. Vuelva al paso 1."
		err := &StateError{Msg: w.errMessage}
		w.mu.Unlock()
		return err
	}

	if fields := invalidBookingFields(in); len(fields) > 0 {
		w.errMessage = "Por favor seleccione fechas y habitación."
		err := &ValidationError{Fields: fields, Msg: w.errMessage}
		w.mu.Unlock()
		return err
	}
	if in.HabitacionID == 0 {
		w.errMessage = "Por favor seleccione una habitación."
		err := &ValidationError{Fields: []string{"habitacionId"}, Msg: w.errMessage}
		w.mu.Unlock()
		return err
	}

	payload := CreateReservationPayload{
		HabitacionID:    in.HabitacionID,
		HuespedID:       w.guestID,
		FechaEntrada:    in.FechaEntrada,
		FechaSalida:     in.FechaSalida,
		NumeroHuespedes: in.NumeroHuespedes,
		Observaciones:   nilIfEmpty(in.Observaciones),
	}
	w.busy = true
	w.mu.Unlock()

	_, err := w.dir.CreateReservation(ctx, payload)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false
	if err != nil {
		w.errMessage = bookingErrorMessage(err)
		return err
	}

	w.errMessage = ""
	w.step = StepCompleted

	// Deferred so the success view still shows the submitted data.
	w.resetTimer = time.AfterFunc(resetDelay, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.resetForms()
	})
	return nil
}

// StartNew unconditionally resets both buffers and the held guest id,
// returns to AwaitingGuest and refreshes the availability list.
func (w *Wizard) StartNew(ctx context.Context) {
	w.mu.Lock()
	if w.resetTimer != nil {
		w.resetTimer.Stop()
		w.resetTimer = nil
	}
	w.step = StepAwaitingGuest
	w.resetForms()
	w.errMessage = ""
	w.mu.Unlock()

	w.LoadRooms(ctx)
}

// Snapshot returns an immutable copy of the wizard state for rendering.
func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	rooms := make([]models.Room, len(w.rooms))
	copy(rooms, w.rooms)

	return Snapshot{
		Step:         w.step,
		Busy:         w.busy,
		ErrorMessage: w.errMessage,
		GuestID:      w.guestID,
		Rooms:        rooms,
		GuestForm:    w.guestForm,
		BookingForm:  w.bookingForm,
	}
}

// resetForms restores both buffers to their defaults and drops the held
// guest id. Caller holds the lock.
func (w *Wizard) resetForms() {
	w.guestForm = GuestInput{TipoDocumento: DefaultDocumentType}
	w.bookingForm = BookingInput{NumeroHuespedes: 1}
	w.guestID = 0
}

func invalidGuestFields(in GuestInput) []string {
	fields := []string{}
	if strings.TrimSpace(in.Nombre) == "" {
		fields = append(fields, "nombre")
	}
	if strings.TrimSpace(in.Apellido) == "" {
		fields = append(fields, "apellido")
	}
	if strings.TrimSpace(in.NumeroDocumento) == "" {
		fields = append(fields, "numeroDocumento")
	}
	if in.Email != "" && !emailPattern.MatchString(in.Email) {
		fields = append(fields, "email")
	}
	return fields
}

func invalidBookingFields(in BookingInput) []string {
	fields := []string{}
	if strings.TrimSpace(in.FechaEntrada) == "" {
		fields = append(fields, "fechaEntrada")
	}
	if strings.TrimSpace(in.FechaSalida) == "" {
		fields = append(fields, "fechaSalida")
	}
	if in.NumeroHuespedes < 1 {
		fields = append(fields, "numeroHuespedes")
	}
	return fields
}

func nilIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
