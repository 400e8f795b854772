package form

import (
	"fmt"
	"sort"
	"strings"
)

// Errors maps field names to their single display message.
type Errors map[string]string

// Error implements the error interface.
// Returns a human-readable message summarizing validation failures.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has checks if a field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the error message for a field, or "".
func (e Errors) Get(field string) string {
	return e[field]
}

// Fields returns the field names with errors, sorted for determinism.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

func (e Errors) clone() Errors {
	out := make(Errors, len(e))
	for field, msg := range e {
		out[field] = msg
	}
	return out
}
