package tables

import (
	"context"

	"github.com/opst/aptsales/pkg/domain"
	xe "github.com/opst/aptsales/pkg/errors"
)

// Param is values to create or update a record.
type Param interface {
	Validate() error
}

// Records implements domain.Store on a Table.
//
// Row is the scanned form of a row, converted into R with ToRecord.
type Records[K comparable, Row any, R any, P Param] struct {
	Conn  Queryer
	Table Table[Row]

	// ToRecord converts a row into a record.
	ToRecord func(Row) (R, error)

	// ToValues converts a parameter into column values to be written.
	ToValues func(P) map[string]any

	// KeyArg converts a key to a query argument. If nil, the key is passed as it is.
	KeyArg func(K) any
}

var _ domain.Store[int64, struct{}, domain.ItemParam] = Records[int64, struct{}, struct{}, domain.ItemParam]{}

func (r Records[K, Row, R, P]) key(k K) any {
	if r.KeyArg == nil {
		return k
	}
	return r.KeyArg(k)
}

func (r Records[K, Row, R, P]) Get(ctx context.Context, id K) (R, error) {
	row, err := r.Table.Get(ctx, r.Conn, r.key(id))
	if err != nil {
		return *new(R), err
	}
	return r.ToRecord(row)
}

func (r Records[K, Row, R, P]) List(ctx context.Context, q domain.ListQuery) (domain.Page[R], error) {
	rows, err := r.Table.List(ctx, r.Conn, q)
	if err != nil {
		return domain.Page[R]{}, err
	}
	return MapPage(rows, r.ToRecord)
}

func (r Records[K, Row, R, P]) Create(ctx context.Context, p P) (R, error) {
	if err := p.Validate(); err != nil {
		return *new(R), xe.Wrap(err)
	}
	row, err := r.Table.Insert(ctx, r.Conn, r.ToValues(p))
	if err != nil {
		return *new(R), err
	}
	return r.ToRecord(row)
}

func (r Records[K, Row, R, P]) Update(ctx context.Context, id K, p P) (R, error) {
	if err := p.Validate(); err != nil {
		return *new(R), xe.Wrap(err)
	}
	row, err := r.Table.Update(ctx, r.Conn, r.key(id), r.ToValues(p))
	if err != nil {
		return *new(R), err
	}
	return r.ToRecord(row)
}

func (r Records[K, Row, R, P]) Delete(ctx context.Context, id K) error {
	return r.Table.Delete(ctx, r.Conn, r.key(id))
}

// MapPage converts items in the page.
func MapPage[T, U any](p domain.Page[T], f func(T) (U, error)) (domain.Page[U], error) {
	items := make([]U, 0, len(p.Items))
	for _, t := range p.Items {
		u, err := f(t)
		if err != nil {
			return domain.Page[U]{}, err
		}
		items = append(items, u)
	}
	return domain.Page[U]{Items: items, Total: p.Total, Page: p.Page, PageSize: p.PageSize}, nil
}
