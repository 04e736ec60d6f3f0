package postgres

import (
	"time"

	kpool "github.com/opst/aptsales/pkg/conn/db/postgres/pool"
	"github.com/opst/aptsales/pkg/domain"
	kdbhistory "github.com/opst/aptsales/pkg/domain/history/db"
	"github.com/opst/aptsales/pkg/domain/internal/db/postgres/tables"
)

type historyTypeRow struct {
	Id   int64  `sql:"id"`
	Name string `sql:"name"`
}

// NewTypes returns the store of history types.
func NewTypes(pool kpool.Pool) kdbhistory.HistoryTypeInterface {
	return tables.Records[int64, historyTypeRow, domain.HistoryType, domain.HistoryTypeParam]{
		Conn: pool,
		Table: tables.Table[historyTypeRow]{
			Name:    "history_type",
			Key:     "id",
			Columns: []string{"id", "name"},
			Listing: domain.HistoryTypeListing,
		},
		ToRecord: func(r historyTypeRow) (domain.HistoryType, error) {
			return domain.HistoryType(r), nil
		},
		ToValues: func(p domain.HistoryTypeParam) map[string]any {
			return map[string]any{"name": p.Name}
		},
	}
}

type historyRow struct {
	Id       int64     `sql:"id"`
	TypeId   int64     `sql:"type_id"`
	Datetime time.Time `sql:"datetime"`
}

// New returns the store of history entries.
func New(pool kpool.Pool) kdbhistory.HistoryInterface {
	return tables.Records[int64, historyRow, domain.History, domain.HistoryParam]{
		Conn: pool,
		Table: tables.Table[historyRow]{
			Name:    "history",
			Key:     "id",
			Columns: []string{"id", "type_id", "datetime"},
			Listing: domain.HistoryListing,
		},
		ToRecord: func(r historyRow) (domain.History, error) {
			return domain.History(r), nil
		},
		ToValues: func(p domain.HistoryParam) map[string]any {
			return map[string]any{
				"type_id":  p.TypeId,
				"datetime": p.Datetime,
			}
		},
	}
}
