package mocks

import (
	"context"
	"errors"

	"github.com/opst/aptsales/pkg/domain"
	kdbclient "github.com/opst/aptsales/pkg/domain/client/db"
	dbmock "github.com/opst/aptsales/pkg/domain/internal/db/mock"
)

type ClientInterface struct {
	dbmock.Store[int64, domain.Client, domain.ClientParam]

	ByApartment struct {
		Impl  func(ctx context.Context, aptId int64) (domain.Client, error)
		Calls dbmock.CallLog[int64]
	}
}

var _ kdbclient.ClientInterface = &ClientInterface{}

func NewClientInterface() *ClientInterface {
	return &ClientInterface{}
}

func (m *ClientInterface) GetByApartment(ctx context.Context, aptId int64) (domain.Client, error) {
	m.ByApartment.Calls = append(m.ByApartment.Calls, aptId)
	if m.ByApartment.Impl != nil {
		return m.ByApartment.Impl(ctx, aptId)
	}
	panic(errors.New("it should no be called"))
}
