package services

import "fmt"

// ValidationError reports a missing or malformed user-supplied field.
// Operations that return it have not mutated any state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TransportError wraps a failed call to an external collaborator.
type TransportError struct {
	Op     string // "normalize", "cover_letter", "trailer"
	Status int    // HTTP status if a response was received, 0 otherwise
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
