package mocks

import (
	"context"
	"errors"

	kschema "github.com/opst/aptsales/pkg/domain/schema/db"
)

type SchemaInterface struct {
	Impl struct {
		Upgrade func(ctx context.Context) error
		Version func(ctx context.Context) (int, error)
		Context func(ctx context.Context) (context.Context, context.CancelFunc)
	}
}

var _ kschema.SchemaInterface = &SchemaInterface{}

func NewSchemaInterface() *SchemaInterface {
	return &SchemaInterface{}
}

func (m *SchemaInterface) Upgrade(ctx context.Context) error {
	if m.Impl.Upgrade != nil {
		return m.Impl.Upgrade(ctx)
	}
	panic(errors.New("it should no be called"))
}

func (m *SchemaInterface) Version(ctx context.Context) (int, error) {
	if m.Impl.Version != nil {
		return m.Impl.Version(ctx)
	}
	panic(errors.New("it should no be called"))
}

// Context returns ctx itself unless Impl.Context is set.
func (m *SchemaInterface) Context(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.Impl.Context != nil {
		return m.Impl.Context(ctx)
	}
	return ctx, func() {}
}
