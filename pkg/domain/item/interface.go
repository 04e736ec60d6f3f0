package item

import "github.com/opst/aptsales/pkg/domain/item/db"

type Interface interface {
	Database() db.ItemInterface
}

type impl struct {
	db db.ItemInterface
}

func New(db db.ItemInterface) Interface {
	return &impl{db: db}
}

func (i *impl) Database() db.ItemInterface {
	return i.db
}
