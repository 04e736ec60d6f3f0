package client

import "github.com/opst/aptsales/pkg/domain/client/db"

type Interface interface {
	Database() db.ClientInterface
}

type impl struct {
	db db.ClientInterface
}

func New(db db.ClientInterface) Interface {
	return &impl{db: db}
}

func (i *impl) Database() db.ClientInterface {
	return i.db
}
