package postgres

import (
	"github.com/google/uuid"
	kpool "github.com/opst/aptsales/pkg/conn/db/postgres/pool"
	"github.com/opst/aptsales/pkg/domain"
	"github.com/opst/aptsales/pkg/domain/internal/db/postgres/tables"
	kdbitem "github.com/opst/aptsales/pkg/domain/item/db"
	xe "github.com/opst/aptsales/pkg/errors"
)

type itemRow struct {
	Id          int64   `sql:"id"`
	Title       string  `sql:"title"`
	Description *string `sql:"description"`
	OwnerId     string  `sql:"owner_id"`
}

func (r itemRow) toItem() (domain.Item, error) {
	owner, err := uuid.Parse(r.OwnerId)
	if err != nil {
		return domain.Item{}, xe.WrapWithNotef(err, "(item id=%d)", r.Id)
	}
	i := domain.Item{Id: r.Id, Title: r.Title, OwnerId: owner}
	if r.Description != nil {
		i.Description = *r.Description
	}
	return i, nil
}

func New(pool kpool.Pool) kdbitem.ItemInterface {
	return tables.Records[int64, itemRow, domain.Item, domain.ItemParam]{
		Conn: pool,
		Table: tables.Table[itemRow]{
			Name:    "item",
			Key:     "id",
			Columns: []string{"id", "title", "description", "owner_id"},
			Listing: domain.ItemListing,
		},
		ToRecord: itemRow.toItem,
		ToValues: func(p domain.ItemParam) map[string]any {
			return map[string]any{
				"title":       p.Title,
				"description": p.Description,
				"owner_id":    p.OwnerId.String(),
			}
		},
	}
}
