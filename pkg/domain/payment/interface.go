package payment

import "github.com/opst/aptsales/pkg/domain/payment/db"

type Interface interface {
	// Database is the store of payments.
	Database() db.PaymentInterface

	// Types is the store of payment types.
	Types() db.PaymentTypeInterface
}

type impl struct {
	db    db.PaymentInterface
	types db.PaymentTypeInterface
}

func New(db db.PaymentInterface, types db.PaymentTypeInterface) Interface {
	return &impl{db: db, types: types}
}

func (i *impl) Database() db.PaymentInterface {
	return i.db
}

func (i *impl) Types() db.PaymentTypeInterface {
	return i.types
}
