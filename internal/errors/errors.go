// Package errors defines the domain error taxonomy shared by services
// and handlers.
package errors

// DomainError is a coded error surfaced to API clients.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
