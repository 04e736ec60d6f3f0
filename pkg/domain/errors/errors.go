package errors

import "errors"

var (
	// requested record is not found.
	ErrMissing = errors.New("missing")

	// requested record is found more than expected.
	ErrTooMuch = errors.New("too much")

	// the record conflicts with another one (e.g. unique constraint).
	ErrConflict = errors.New("conflict")

	// the request or record is not acceptable.
	ErrInvalid = errors.New("invalid")
)
