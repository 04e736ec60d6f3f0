package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	domerr "github.com/opst/aptsales/pkg/domain/errors"
)

// requested data is missing.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s", m.Identity, m.Table)
}
func (m Missing) Unwrap() error {
	return domerr.ErrMissing
}

// requested data is found too much.
type TooMuch struct {
	Table    string
	Identity string
	Expected int
}

var _ error = TooMuch{}

func (t TooMuch) Error() string {
	return fmt.Sprintf(
		"%s is found in %s more than %d times",
		t.Identity, t.Table, t.Expected,
	)
}

func (t TooMuch) Unwrap() error {
	return domerr.ErrTooMuch
}

// the record violates a constraint of the table.
type Violation struct {
	Table      string
	Constraint string
	Detail     string
	sentinel   error
	cause      error
}

func (v Violation) Error() string {
	if v.Detail == "" {
		return fmt.Sprintf("%s violates %s", v.Table, v.Constraint)
	}
	return fmt.Sprintf("%s violates %s: %s", v.Table, v.Constraint, v.Detail)
}

func (v Violation) Unwrap() []error {
	return []error{v.sentinel, v.cause}
}

// Translate converts errors from pgx into domain errors.
//
// - pgx.ErrNoRows => Missing{table, identity}
//
// - unique violation => Violation wrapping domerr.ErrConflict
//
// - foreign key, not null and check violation => Violation wrapping domerr.ErrInvalid
//
// Other errors are returned as they are.
func Translate(err error, table string, identity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return Missing{Table: table, Identity: identity}
	}

	pgerr := new(pgconn.PgError)
	if !errors.As(err, &pgerr) {
		return err
	}
	v := Violation{
		Table:      table,
		Constraint: pgerr.ConstraintName,
		Detail:     pgerr.Detail,
		cause:      err,
	}
	switch pgerr.Code {
	case pgerrcode.UniqueViolation:
		v.sentinel = domerr.ErrConflict
	case pgerrcode.ForeignKeyViolation, pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
		v.sentinel = domerr.ErrInvalid
	default:
		return err
	}
	return v
}
