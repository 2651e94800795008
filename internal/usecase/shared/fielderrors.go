package shared

import (
	"errors"
	"sort"
	"strings"
)

// FieldErrors accumulates per-field validation failures so registration and
// availability requests can report every bad field in one response instead of
// failing on the first.
type FieldErrors map[string]string

func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

func (f FieldErrors) Add(field, message string) {
	if _, ok := f[field]; !ok {
		f[field] = message
	}
}

func (f FieldErrors) HasErrors() bool {
	return len(f) > 0
}

// Error renders fields in sorted order so the message is deterministic.
func (f FieldErrors) Error() string {
	if len(f) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(f[field])
	}
	return b.String()
}

// AsFieldErrors unwraps a FieldErrors from an error chain, if present.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
