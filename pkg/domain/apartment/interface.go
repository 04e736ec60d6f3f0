package apartment

import "github.com/opst/aptsales/pkg/domain/apartment/db"

type Interface interface {
	Database() db.ApartmentInterface
}

type impl struct {
	db db.ApartmentInterface
}

func New(db db.ApartmentInterface) Interface {
	return &impl{db: db}
}

func (i *impl) Database() db.ApartmentInterface {
	return i.db
}
