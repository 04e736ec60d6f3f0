package mocks

import (
	"github.com/opst/aptsales/pkg/domain"
	dbmock "github.com/opst/aptsales/pkg/domain/internal/db/mock"
	kdbitem "github.com/opst/aptsales/pkg/domain/item/db"
)

type ItemInterface struct {
	dbmock.Store[int64, domain.Item, domain.ItemParam]
}

var _ kdbitem.ItemInterface = &ItemInterface{}

func NewItemInterface() *ItemInterface {
	return &ItemInterface{}
}
