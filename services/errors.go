package services

import (
	"sort"
	"strings"
)

// Services follow two error conventions the controllers translate to HTTP:
// message errors prefixed "validation:" / "conflict:" plus "_not_found"
// sentinels, and FieldErrors for structured per-field rejections.

// FieldErrors is a per-field validation rejection, serialized to the
// console as {"errors": {campo: [mensajes]}}.
type FieldErrors map[string][]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	parts := []string{}
	for _, k := range fields {
		parts = append(parts, k+": "+strings.Join(f[k], ", "))
	}
	return strings.Join(parts, "; ")
}

// IsValidation reports whether err carries the "validation:" prefix.
func IsValidation(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "validation:")
}

// IsConflict reports whether err carries the "conflict:" prefix.
func IsConflict(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "conflict:")
}

// IsNotFound reports whether err is one of the *_not_found sentinels.
func IsNotFound(err error) bool {
	return err != nil && strings.HasSuffix(err.Error(), "_not_found")
}

// CleanMessage strips the convention prefix for user display.
func CleanMessage(err error) string {
	msg := err.Error()
	for _, p := range []string{"validation: ", "conflict: "} {
		if strings.HasPrefix(msg, p) {
			return strings.TrimPrefix(msg, p)
		}
	}
	return msg
}
