package db

import (
	kapt "github.com/opst/aptsales/pkg/domain/apartment/db"
	kclient "github.com/opst/aptsales/pkg/domain/client/db"
	khistory "github.com/opst/aptsales/pkg/domain/history/db"
	kitem "github.com/opst/aptsales/pkg/domain/item/db"
	kpayment "github.com/opst/aptsales/pkg/domain/payment/db"
	kschema "github.com/opst/aptsales/pkg/domain/schema/db"
	kuser "github.com/opst/aptsales/pkg/domain/user/db"
)

type AptsalesDatabase interface {
	User() kuser.UserInterface
	Item() kitem.ItemInterface
	Apartment() kapt.ApartmentInterface
	Client() kclient.ClientInterface
	PaymentType() kpayment.PaymentTypeInterface
	Payment() kpayment.PaymentInterface
	HistoryType() khistory.HistoryTypeInterface
	History() khistory.HistoryInterface
	Schema() kschema.SchemaInterface
	Close() error
}
