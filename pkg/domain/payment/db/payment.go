package db

import "github.com/opst/aptsales/pkg/domain"

type PaymentTypeInterface interface {
	domain.PaymentTypeStore
}

type PaymentInterface interface {
	domain.PaymentStore
}
