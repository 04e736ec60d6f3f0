package domain

import (
	"fmt"

	domerr "github.com/opst/aptsales/pkg/domain/errors"
)

// ErrInvalidRecord is the root of validation errors of *Param types.
//
// It is also domerr.ErrInvalid.
var ErrInvalidRecord = fmt.Errorf("invalid record: %w", domerr.ErrInvalid)
