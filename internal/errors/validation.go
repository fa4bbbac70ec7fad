package errors

import "fmt"

// ValidationError carries the per-field messages of a rejected form.
// Handlers surface the map inline so the client can annotate fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid fields", len(e.Fields))
}
