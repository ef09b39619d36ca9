package controllers

import (
	"net/http"
	"sync"

	"hotel-admin-backend/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WizardController exposes the reservation wizard over HTTP. Each session
// owns one workflow.Wizard; sessions live in memory and die with the
// process, matching the wizard's no-persistence contract.
type WizardController struct {
	dir workflow.Directory

	mu       sync.RWMutex
	sessions map[string]*workflow.Wizard
}

func NewWizardController(dir workflow.Directory) *WizardController {
	return &WizardController{
		dir:      dir,
		sessions: make(map[string]*workflow.Wizard),
	}
}

// POST /api/reservas/asistente
// Opens a wizard session and returns its id plus the initial snapshot.
func (ct *WizardController) StartSession(c *gin.Context) {
	w := workflow.New(ct.dir)
	w.LoadRooms(c.Request.Context())

	id := uuid.NewString()
	ct.mu.Lock()
	ct.sessions[id] = w
	ct.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{
		"sesionId": id,
		"estado":   w.Snapshot(),
	})
}

// GET /api/reservas/asistente/:sesion
func (ct *WizardController) GetSnapshot(c *gin.Context) {
	w, ok := ct.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, w.Snapshot())
}

// POST /api/reservas/asistente/:sesion/huesped
// Step 1: submits the guest form. The snapshot comes back regardless of
// outcome; the error message travels inside it.
func (ct *WizardController) SubmitGuest(c *gin.Context) {
	w, ok := ct.session(c)
	if !ok {
		return
	}

	var in workflow.GuestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload inválido"})
		return
	}

	err := w.SubmitGuestDetails(c.Request.Context(), in)
	c.JSON(wizardStatus(err), w.Snapshot())
}

// POST /api/reservas/asistente/:sesion/reserva
// Step 2: submits the booking form with the held guest id.
func (ct *WizardController) SubmitBooking(c *gin.Context) {
	w, ok := ct.session(c)
	if !ok {
		return
	}

	var in workflow.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payload inválido"})
		return
	}

	err := w.SubmitBookingDetails(c.Request.Context(), in)
	c.JSON(wizardStatus(err), w.Snapshot())
}

// POST /api/reservas/asistente/:sesion/reiniciar
// Resets the session to step 1 and refreshes the room list.
func (ct *WizardController) RestartSession(c *gin.Context) {
	w, ok := ct.session(c)
	if !ok {
		return
	}
	w.StartNew(c.Request.Context())
	c.JSON(http.StatusOK, w.Snapshot())
}

// DELETE /api/reservas/asistente/:sesion
func (ct *WizardController) CloseSession(c *gin.Context) {
	id := c.Param("sesion")
	ct.mu.Lock()
	delete(ct.sessions, id)
	ct.mu.Unlock()
	c.Status(http.StatusNoContent)
}

func (ct *WizardController) session(c *gin.Context) (*workflow.Wizard, bool) {
	id := c.Param("sesion")
	ct.mu.RLock()
	w, ok := ct.sessions[id]
	ct.mu.RUnlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "sesión de asistente no encontrada"})
		return nil, false
	}
	return w, true
}

// wizardStatus maps wizard errors to HTTP codes. The body is always the
// snapshot; clients read mensajeError from it.
func wizardStatus(err error) int {
	switch err.(type) {
	case nil:
		return http.StatusOK
	case *workflow.ValidationError, *workflow.RemoteValidationError:
		return http.StatusUnprocessableEntity
	case *workflow.StateError:
		return http.StatusConflict
	case *workflow.RemoteConflictError:
		return http.StatusConflict
	case *workflow.RemoteError:
		return http.StatusBadRequest
	case *workflow.ConnectivityError:
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
