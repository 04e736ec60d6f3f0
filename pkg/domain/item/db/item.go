package db

import "github.com/opst/aptsales/pkg/domain"

type ItemInterface interface {
	domain.ItemStore
}
