package db

import (
	"context"

	"github.com/opst/aptsales/pkg/domain"
)

type UserInterface interface {
	domain.UserStore

	// GetByEmail returns the user having the email.
	//
	// When there are no such users, it returns an error wrapping ErrMissing.
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}
