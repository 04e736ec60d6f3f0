package mocks

import (
	"github.com/opst/aptsales/pkg/domain"
	dbmock "github.com/opst/aptsales/pkg/domain/internal/db/mock"
	kdbpayment "github.com/opst/aptsales/pkg/domain/payment/db"
)

type PaymentTypeInterface struct {
	dbmock.Store[int64, domain.PaymentType, domain.PaymentTypeParam]
}

var _ kdbpayment.PaymentTypeInterface = &PaymentTypeInterface{}

func NewPaymentTypeInterface() *PaymentTypeInterface {
	return &PaymentTypeInterface{}
}

type PaymentInterface struct {
	dbmock.Store[int64, domain.Payment, domain.PaymentParam]
}

var _ kdbpayment.PaymentInterface = &PaymentInterface{}

func NewPaymentInterface() *PaymentInterface {
	return &PaymentInterface{}
}
