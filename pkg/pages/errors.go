package pages

import (
	"errors"

	domerr "github.com/opst/aptsales/pkg/domain/errors"
)

// NotFoundError tells a record needed by a page is missing.
//
// Reason is the message to be shown to users, like "Client not found".
type NotFoundError struct {
	Reason string
	Err    error
}

func (e *NotFoundError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return e.Reason + ": " + e.Err.Error()
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

const (
	ApartmentNotFound = "Apartment not found"
	ClientNotFound    = "Client not found"
)

// notFound replaces ErrMissing with NotFoundError. Other errors are returned as they are.
func notFound(reason string, err error) error {
	if errors.Is(err, domerr.ErrMissing) {
		return &NotFoundError{Reason: reason, Err: err}
	}
	return err
}
