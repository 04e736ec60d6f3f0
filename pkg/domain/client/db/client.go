package db

import (
	"context"

	"github.com/opst/aptsales/pkg/domain"
)

type ClientInterface interface {
	domain.ClientStore

	// GetByApartment returns the first client (having the smallest id) of the apartment.
	//
	// When the apartment has no clients, it returns an error wrapping ErrMissing.
	GetByApartment(ctx context.Context, aptId int64) (domain.Client, error)
}
