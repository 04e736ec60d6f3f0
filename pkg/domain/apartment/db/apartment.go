package db

import "github.com/opst/aptsales/pkg/domain"

type ApartmentInterface interface {
	domain.ApartmentStore
}
