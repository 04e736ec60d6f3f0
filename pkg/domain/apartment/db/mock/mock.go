package mocks

import (
	"github.com/opst/aptsales/pkg/domain"
	kdbapt "github.com/opst/aptsales/pkg/domain/apartment/db"
	dbmock "github.com/opst/aptsales/pkg/domain/internal/db/mock"
)

type ApartmentInterface struct {
	dbmock.Store[int64, domain.Apartment, domain.ApartmentParam]
}

var _ kdbapt.ApartmentInterface = &ApartmentInterface{}

func NewApartmentInterface() *ApartmentInterface {
	return &ApartmentInterface{}
}
