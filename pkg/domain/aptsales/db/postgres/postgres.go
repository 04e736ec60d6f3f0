package postgres

import (
	"context"

	kpool "github.com/opst/aptsales/pkg/conn/db/postgres/pool"
	kapt "github.com/opst/aptsales/pkg/domain/apartment/db"
	kpgapt "github.com/opst/aptsales/pkg/domain/apartment/db/postgres"
	dbInterface "github.com/opst/aptsales/pkg/domain/aptsales/db"
	kclient "github.com/opst/aptsales/pkg/domain/client/db"
	kpgclient "github.com/opst/aptsales/pkg/domain/client/db/postgres"
	khistory "github.com/opst/aptsales/pkg/domain/history/db"
	kpghistory "github.com/opst/aptsales/pkg/domain/history/db/postgres"
	kitem "github.com/opst/aptsales/pkg/domain/item/db"
	kpgitem "github.com/opst/aptsales/pkg/domain/item/db/postgres"
	kpayment "github.com/opst/aptsales/pkg/domain/payment/db"
	kpgpayment "github.com/opst/aptsales/pkg/domain/payment/db/postgres"
	kschema "github.com/opst/aptsales/pkg/domain/schema/db"
	kpgschema "github.com/opst/aptsales/pkg/domain/schema/db/postgres"
	kuser "github.com/opst/aptsales/pkg/domain/user/db"
	kpguser "github.com/opst/aptsales/pkg/domain/user/db/postgres"
	xe "github.com/opst/aptsales/pkg/errors"
)

type aptsalesDBPostgres struct {
	pool        kpool.Pool
	user        kuser.UserInterface
	item        kitem.ItemInterface
	apartment   kapt.ApartmentInterface
	client      kclient.ClientInterface
	paymentType kpayment.PaymentTypeInterface
	payment     kpayment.PaymentInterface
	historyType khistory.HistoryTypeInterface
	history     khistory.HistoryInterface
	schema      kschema.SchemaInterface
}

type Config struct {
	SchemaRepository string
}

type Option func(*Config) *Config

func WithSchemaRepository(repository string) Option {
	return func(c *Config) *Config {
		c.SchemaRepository = repository
		return c
	}
}

func New(
	ctx context.Context,
	url string,
	options ...Option,
) (dbInterface.AptsalesDatabase, error) {
	p, err := kpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return Wrap(p, options...), nil
}

// Wrap builds stores on the pool.
func Wrap(p kpool.Pool, options ...Option) dbInterface.AptsalesDatabase {
	c := Config{}
	for _, option := range options {
		c = *option(&c)
	}

	schema := kpgschema.Null()
	if c.SchemaRepository != "" {
		schema = kpgschema.New(p, c.SchemaRepository)
	}

	return &aptsalesDBPostgres{
		pool:        p,
		user:        kpguser.New(p),
		item:        kpgitem.New(p),
		apartment:   kpgapt.New(p),
		client:      kpgclient.New(p),
		paymentType: kpgpayment.NewTypes(p),
		payment:     kpgpayment.New(p),
		historyType: kpghistory.NewTypes(p),
		history:     kpghistory.New(p),
		schema:      schema,
	}
}

func (a *aptsalesDBPostgres) User() kuser.UserInterface {
	return a.user
}

func (a *aptsalesDBPostgres) Item() kitem.ItemInterface {
	return a.item
}

func (a *aptsalesDBPostgres) Apartment() kapt.ApartmentInterface {
	return a.apartment
}

func (a *aptsalesDBPostgres) Client() kclient.ClientInterface {
	return a.client
}

func (a *aptsalesDBPostgres) PaymentType() kpayment.PaymentTypeInterface {
	return a.paymentType
}

func (a *aptsalesDBPostgres) Payment() kpayment.PaymentInterface {
	return a.payment
}

func (a *aptsalesDBPostgres) HistoryType() khistory.HistoryTypeInterface {
	return a.historyType
}

func (a *aptsalesDBPostgres) History() khistory.HistoryInterface {
	return a.history
}

func (a *aptsalesDBPostgres) Schema() kschema.SchemaInterface {
	return a.schema
}

func (a *aptsalesDBPostgres) Close() error {
	a.pool.Close()
	return nil
}
