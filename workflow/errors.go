package workflow

import (
	"fmt"
	"sort"
	"strings"
)

// Error taxonomy of the wizard. ValidationError and StateError are local and
// never reach the network; the Remote* kinds wrap a directory rejection and
// ConnectivityError means no response was received at all. All of them also
// set the wizard's visible error message, so callers may ignore the returned
// error and render the snapshot instead.

// ValidationError reports locally rejected input, with the offending fields
// so the form can highlight them.
type ValidationError struct {
	Fields []string
	Msg    string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s (campos: %s)", e.Msg, strings.Join(e.Fields, ", "))
}

// StateError reports a workflow invariant violation, e.g. submitting booking
// details while no guest has been identified.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string { return e.Msg }

// RemoteError is a directory rejection that carried a plain message.
type RemoteError struct {
	Msg string
}

func (e *RemoteError) Error() string { return e.Msg }

// RemoteValidationError is a directory rejection with structured per-field
// messages.
type RemoteValidationError struct {
	Errors map[string][]string
}

func (e *RemoteValidationError) Error() string {
	return "Errores: " + e.Flatten()
}

// Flatten joins all field messages in stable field order.
func (e *RemoteValidationError) Flatten() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := []string{}
	for _, f := range fields {
		msgs = append(msgs, e.Errors[f]...)
	}
	return strings.Join(msgs, ", ")
}

// RemoteConflictError is a directory rejection for an availability conflict.
// The console surfaces it with the generic booking failure message because
// the directory does not reliably distinguish it from other rejections.
type RemoteConflictError struct {
	Msg string
}

func (e *RemoteConflictError) Error() string { return e.Msg }

// ConnectivityError means the request never produced a response.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	if e.Err == nil {
		return "sin respuesta del servidor"
	}
	return "sin respuesta del servidor: " + e.Err.Error()
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// guestErrorMessage converts a create-guest failure into the message the
// console shows. There is no connectivity branch here: the original screen
// falls through to the generic registration message.
func guestErrorMessage(err error) string {
	switch e := err.(type) {
	case *RemoteError:
		if e.Msg != "" {
			return e.Msg
		}
	case *RemoteValidationError:
		return "Errores: " + e.Flatten()
	}
	return "Error al registrar el huésped. Intente nuevamente."
}

// bookingErrorMessage converts a create-reservation failure into the message
// the console shows: explicit message first, then structured field errors,
// then connectivity, then the generic availability hint.
func bookingErrorMessage(err error) string {
	switch e := err.(type) {
	case *RemoteError:
		if e.Msg != "" {
			return e.Msg
		}
	case *RemoteValidationError:
		return "Errores: " + e.Flatten()
	case *ConnectivityError:
		return "No se pudo conectar con el servidor. Verifique su conexión."
	case *RemoteConflictError:
		if e.Msg != "" {
			return e.Msg
		}
	}
	return "Error al crear la reserva. Verifique disponibilidad."
}
