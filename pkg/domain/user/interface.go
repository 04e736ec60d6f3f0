package user

import "github.com/opst/aptsales/pkg/domain/user/db"

type Interface interface {
	Database() db.UserInterface
}

type impl struct {
	db db.UserInterface
}

func New(db db.UserInterface) Interface {
	return &impl{db: db}
}

func (i *impl) Database() db.UserInterface {
	return i.db
}
