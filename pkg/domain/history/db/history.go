package db

import "github.com/opst/aptsales/pkg/domain"

type HistoryTypeInterface interface {
	domain.HistoryTypeStore
}

type HistoryInterface interface {
	domain.HistoryStore
}
