package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/opst/aptsales/pkg/domain"
	domerr "github.com/opst/aptsales/pkg/domain/errors"
	xe "github.com/opst/aptsales/pkg/errors"
)

// Model is CRUD operations over records of a kind, in terms of JSON.
//
// Records are returned as JSON-able values. Keys are given as strings in URL.
type Model interface {
	// Get returns the record having key.
	//
	// When key is malformed or there are no such records, it returns an error wrapping ErrMissing.
	Get(ctx context.Context, key string) (any, error)

	// List returns a page of records.
	List(ctx context.Context, q domain.ListQuery) (domain.Page[any], error)

	// Create decodes body as a form and creates a record.
	//
	// When body is malformed, it returns an error wrapping ErrInvalid.
	Create(ctx context.Context, body []byte) (any, error)

	// Update decodes body as a form and overwrites the record having key.
	Update(ctx context.Context, key string, body []byte) (any, error)

	// Delete removes the record having key.
	Delete(ctx context.Context, key string) error
}

// storeModel adapts domain.Store to Model.
//
// R is the record, P is its domain param, J is the JSON type of R and F is the JSON form of P.
type storeModel[K comparable, R any, P any, J any, F any] struct {
	store    domain.Store[K, R, P]
	parseKey func(string) (K, error)
	compose  func(R) J

	// param converts a form to the param. creating is true for Create.
	param func(ctx context.Context, f F, creating bool) (P, error)
}

var _ Model = &storeModel[int64, domain.Item, domain.ItemParam, any, any]{}

func int64Key(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func uuidKey(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

func (m *storeModel[K, R, P, J, F]) key(s string) (K, error) {
	k, err := m.parseKey(s)
	if err != nil {
		return *new(K), fmt.Errorf("%w: malformed key %q", domerr.ErrMissing, s)
	}
	return k, nil
}

func (m *storeModel[K, R, P, J, F]) form(body []byte) (F, error) {
	f := new(F)
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(f); err != nil {
		return *new(F), fmt.Errorf("%w: malformed form: %s", domerr.ErrInvalid, err)
	}
	return *f, nil
}

func (m *storeModel[K, R, P, J, F]) Get(ctx context.Context, key string) (any, error) {
	k, err := m.key(key)
	if err != nil {
		return nil, err
	}
	r, err := m.store.Get(ctx, k)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return m.compose(r), nil
}

func (m *storeModel[K, R, P, J, F]) List(ctx context.Context, q domain.ListQuery) (domain.Page[any], error) {
	page, err := m.store.List(ctx, q)
	if err != nil {
		return domain.Page[any]{}, xe.Wrap(err)
	}
	items := make([]any, 0, len(page.Items))
	for _, r := range page.Items {
		items = append(items, m.compose(r))
	}
	return domain.Page[any]{
		Items: items, Total: page.Total, Page: page.Page, PageSize: page.PageSize,
	}, nil
}

func (m *storeModel[K, R, P, J, F]) Create(ctx context.Context, body []byte) (any, error) {
	f, err := m.form(body)
	if err != nil {
		return nil, err
	}
	p, err := m.param(ctx, f, true)
	if err != nil {
		return nil, err
	}
	r, err := m.store.Create(ctx, p)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return m.compose(r), nil
}

func (m *storeModel[K, R, P, J, F]) Update(ctx context.Context, key string, body []byte) (any, error) {
	k, err := m.key(key)
	if err != nil {
		return nil, err
	}
	f, err := m.form(body)
	if err != nil {
		return nil, err
	}
	p, err := m.param(ctx, f, false)
	if err != nil {
		return nil, err
	}
	r, err := m.store.Update(ctx, k, p)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return m.compose(r), nil
}

func (m *storeModel[K, R, P, J, F]) Delete(ctx context.Context, key string) error {
	k, err := m.key(key)
	if err != nil {
		return err
	}
	if err := m.store.Delete(ctx, k); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

// Cells picks values of columns from a record, as strings.
//
// null is rendered as empty.
func Cells(record any, columns []string) ([]string, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}

	cells := make([]string, 0, len(columns))
	for _, c := range columns {
		switch v := m[c].(type) {
		case nil:
			cells = append(cells, "")
		case string:
			cells = append(cells, v)
		default:
			cells = append(cells, fmt.Sprint(v))
		}
	}
	return cells, nil
}
