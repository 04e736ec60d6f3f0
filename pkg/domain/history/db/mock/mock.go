package mocks

import (
	"github.com/opst/aptsales/pkg/domain"
	kdbhistory "github.com/opst/aptsales/pkg/domain/history/db"
	dbmock "github.com/opst/aptsales/pkg/domain/internal/db/mock"
)

type HistoryTypeInterface struct {
	dbmock.Store[int64, domain.HistoryType, domain.HistoryTypeParam]
}

var _ kdbhistory.HistoryTypeInterface = &HistoryTypeInterface{}

func NewHistoryTypeInterface() *HistoryTypeInterface {
	return &HistoryTypeInterface{}
}

type HistoryInterface struct {
	dbmock.Store[int64, domain.History, domain.HistoryParam]
}

var _ kdbhistory.HistoryInterface = &HistoryInterface{}

func NewHistoryInterface() *HistoryInterface {
	return &HistoryInterface{}
}
