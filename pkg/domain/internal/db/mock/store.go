package mocks

import (
	"context"
	"errors"

	"github.com/opst/aptsales/pkg/domain"
)

// Store is a mock of domain.Store.
//
// Set functions to Impl for methods to be called.
// Calling a method without Impl panics.
type Store[K comparable, R any, P any] struct {
	Impl struct {
		Get    func(ctx context.Context, id K) (R, error)
		List   func(ctx context.Context, q domain.ListQuery) (domain.Page[R], error)
		Create func(ctx context.Context, p P) (R, error)
		Update func(ctx context.Context, id K, p P) (R, error)
		Delete func(ctx context.Context, id K) error
	}
	Calls struct {
		Get    CallLog[K]
		List   CallLog[domain.ListQuery]
		Create CallLog[P]
		Update CallLog[struct {
			Id    K
			Param P
		}]
		Delete CallLog[K]
	}
}

var _ domain.Store[int64, domain.Item, domain.ItemParam] = &Store[int64, domain.Item, domain.ItemParam]{}

func (m *Store[K, R, P]) Get(ctx context.Context, id K) (R, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("it should no be called"))
}

func (m *Store[K, R, P]) List(ctx context.Context, q domain.ListQuery) (domain.Page[R], error) {
	m.Calls.List = append(m.Calls.List, q)
	if m.Impl.List != nil {
		return m.Impl.List(ctx, q)
	}
	panic(errors.New("it should no be called"))
}

func (m *Store[K, R, P]) Create(ctx context.Context, p P) (R, error) {
	m.Calls.Create = append(m.Calls.Create, p)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, p)
	}
	panic(errors.New("it should no be called"))
}

func (m *Store[K, R, P]) Update(ctx context.Context, id K, p P) (R, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id    K
		Param P
	}{Id: id, Param: p})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, p)
	}
	panic(errors.New("it should no be called"))
}

func (m *Store[K, R, P]) Delete(ctx context.Context, id K) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should no be called"))
}
