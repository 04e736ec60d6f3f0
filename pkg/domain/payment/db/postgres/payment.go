package postgres

import (
	"time"

	kpool "github.com/opst/aptsales/pkg/conn/db/postgres/pool"
	"github.com/opst/aptsales/pkg/domain"
	"github.com/opst/aptsales/pkg/domain/internal/db/postgres/tables"
	kdbpayment "github.com/opst/aptsales/pkg/domain/payment/db"
)

type paymentTypeRow struct {
	Id   int64  `sql:"id"`
	Name string `sql:"name"`
}

// NewTypes returns the store of payment types.
func NewTypes(pool kpool.Pool) kdbpayment.PaymentTypeInterface {
	return tables.Records[int64, paymentTypeRow, domain.PaymentType, domain.PaymentTypeParam]{
		Conn: pool,
		Table: tables.Table[paymentTypeRow]{
			Name:    "payment_type",
			Key:     "id",
			Columns: []string{"id", "name"},
			Listing: domain.PaymentTypeListing,
		},
		ToRecord: func(r paymentTypeRow) (domain.PaymentType, error) {
			return domain.PaymentType(r), nil
		},
		ToValues: func(p domain.PaymentTypeParam) map[string]any {
			return map[string]any{"name": p.Name}
		},
	}
}

type paymentRow struct {
	Id            int64     `sql:"id"`
	DateOfPayment time.Time `sql:"date_of_payment"`
	PaymentTypeId int64     `sql:"payment_type_id"`
	Amount        float64   `sql:"amount"`
	ClientId      int64     `sql:"client_id"`
}

// New returns the store of payments.
func New(pool kpool.Pool) kdbpayment.PaymentInterface {
	return tables.Records[int64, paymentRow, domain.Payment, domain.PaymentParam]{
		Conn: pool,
		Table: tables.Table[paymentRow]{
			Name:    "payment",
			Key:     "id",
			Columns: []string{"id", "date_of_payment", "payment_type_id", "amount", "client_id"},
			Listing: domain.PaymentListing,
		},
		ToRecord: func(r paymentRow) (domain.Payment, error) {
			return domain.Payment(r), nil
		},
		ToValues: func(p domain.PaymentParam) map[string]any {
			return map[string]any{
				"date_of_payment": p.DateOfPayment,
				"payment_type_id": p.PaymentTypeId,
				"amount":          p.Amount,
				"client_id":       p.ClientId,
			}
		},
	}
}
