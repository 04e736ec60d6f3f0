package mocks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/opst/aptsales/pkg/domain"
	dbmock "github.com/opst/aptsales/pkg/domain/internal/db/mock"
	kdbuser "github.com/opst/aptsales/pkg/domain/user/db"
)

type UserInterface struct {
	dbmock.Store[uuid.UUID, domain.User, domain.UserParam]

	ByEmail struct {
		Impl  func(ctx context.Context, email string) (domain.User, error)
		Calls dbmock.CallLog[string]
	}
}

var _ kdbuser.UserInterface = &UserInterface{}

func NewUserInterface() *UserInterface {
	return &UserInterface{}
}

func (m *UserInterface) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	m.ByEmail.Calls = append(m.ByEmail.Calls, email)
	if m.ByEmail.Impl != nil {
		return m.ByEmail.Impl(ctx, email)
	}
	panic(errors.New("it should no be called"))
}
