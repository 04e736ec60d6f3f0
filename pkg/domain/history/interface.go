package history

import "github.com/opst/aptsales/pkg/domain/history/db"

type Interface interface {
	// Database is the store of history entries.
	Database() db.HistoryInterface

	// Types is the store of history types.
	Types() db.HistoryTypeInterface
}

type impl struct {
	db    db.HistoryInterface
	types db.HistoryTypeInterface
}

func New(db db.HistoryInterface, types db.HistoryTypeInterface) Interface {
	return &impl{db: db, types: types}
}

func (i *impl) Database() db.HistoryInterface {
	return i.db
}

func (i *impl) Types() db.HistoryTypeInterface {
	return i.types
}
