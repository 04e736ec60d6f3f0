package aptsales

import (
	"context"

	"github.com/opst/aptsales/pkg/configs/server"
	"github.com/opst/aptsales/pkg/domain/apartment"
	dbInterface "github.com/opst/aptsales/pkg/domain/aptsales/db"
	"github.com/opst/aptsales/pkg/domain/aptsales/db/postgres"
	"github.com/opst/aptsales/pkg/domain/client"
	"github.com/opst/aptsales/pkg/domain/history"
	"github.com/opst/aptsales/pkg/domain/item"
	"github.com/opst/aptsales/pkg/domain/payment"
	"github.com/opst/aptsales/pkg/domain/schema"
	"github.com/opst/aptsales/pkg/domain/user"
)

// Aptsales is the root object of the domain.
type Aptsales interface {
	Config() *server.ServerConfig

	User() user.Interface
	Item() item.Interface
	Apartment() apartment.Interface
	Client() client.Interface
	Payment() payment.Interface
	History() history.Interface

	Schema() schema.Interface

	// Close releases connections to the database.
	Close() error
}

type aptsales struct {
	config *server.ServerConfig
	db     dbInterface.AptsalesDatabase

	user      user.Interface
	item      item.Interface
	apartment apartment.Interface
	client    client.Interface
	payment   payment.Interface
	history   history.Interface
	schema    schema.Interface
}

// Default connects the database in the config.
func Default(
	ctx context.Context,
	config *server.ServerConfig,
	options ...Option,
) (Aptsales, error) {
	opt := &_options{}
	for _, o := range options {
		o(opt)
	}

	pg, err := postgres.New(ctx, config.Database(), opt.pg...)
	if err != nil {
		return nil, err
	}
	return New(config, pg), nil
}

// New builds Aptsales on the database.
func New(config *server.ServerConfig, db dbInterface.AptsalesDatabase) Aptsales {
	return &aptsales{
		config: config,
		db:     db,

		user:      user.New(db.User()),
		item:      item.New(db.Item()),
		apartment: apartment.New(db.Apartment()),
		client:    client.New(db.Client()),
		payment:   payment.New(db.Payment(), db.PaymentType()),
		history:   history.New(db.History(), db.HistoryType()),
		schema:    schema.New(db.Schema()),
	}
}

type Option func(*_options)

type _options struct {
	pg []postgres.Option
}

func WithSchemaRepository(repository string) Option {
	return func(o *_options) {
		o.pg = append(o.pg, postgres.WithSchemaRepository(repository))
	}
}

func (a *aptsales) Config() *server.ServerConfig {
	return a.config
}

func (a *aptsales) User() user.Interface {
	return a.user
}

func (a *aptsales) Item() item.Interface {
	return a.item
}

func (a *aptsales) Apartment() apartment.Interface {
	return a.apartment
}

func (a *aptsales) Client() client.Interface {
	return a.client
}

func (a *aptsales) Payment() payment.Interface {
	return a.payment
}

func (a *aptsales) History() history.Interface {
	return a.history
}

func (a *aptsales) Schema() schema.Interface {
	return a.schema
}

func (a *aptsales) Close() error {
	return a.db.Close()
}
