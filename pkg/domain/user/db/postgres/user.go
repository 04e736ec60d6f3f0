package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	kpool "github.com/opst/aptsales/pkg/conn/db/postgres/pool"
	"github.com/opst/aptsales/pkg/domain"
	"github.com/opst/aptsales/pkg/domain/internal/db/postgres/tables"
	kdbuser "github.com/opst/aptsales/pkg/domain/user/db"
	xe "github.com/opst/aptsales/pkg/errors"
)

type userRow struct {
	Id             string  `sql:"id"`
	Email          string  `sql:"email"`
	FullName       *string `sql:"full_name"`
	IsActive       bool    `sql:"is_active"`
	IsSuperuser    bool    `sql:"is_superuser"`
	HashedPassword string  `sql:"hashed_password"`
}

func (r userRow) toUser() (domain.User, error) {
	id, err := uuid.Parse(r.Id)
	if err != nil {
		return domain.User{}, xe.WrapWithNotef(err, "(user id=%s)", r.Id)
	}
	u := domain.User{
		Id:             id,
		Email:          r.Email,
		IsActive:       r.IsActive,
		IsSuperuser:    r.IsSuperuser,
		HashedPassword: r.HashedPassword,
	}
	if r.FullName != nil {
		u.FullName = *r.FullName
	}
	return u, nil
}

func values(p domain.UserParam) map[string]any {
	v := map[string]any{
		"email":        p.Email,
		"full_name":    p.FullName,
		"is_active":    p.IsActive,
		"is_superuser": p.IsSuperuser,
	}
	if p.HashedPassword != "" {
		v["hashed_password"] = p.HashedPassword
	}
	return v
}

var table = tables.Table[userRow]{
	Name:    "user",
	Key:     "id",
	Columns: []string{"id", "email", "full_name", "is_active", "is_superuser", "hashed_password"},
	Listing: domain.UserListing,
}

type pgUser struct {
	tables.Records[uuid.UUID, userRow, domain.User, domain.UserParam]
}

var _ kdbuser.UserInterface = &pgUser{}

func New(pool kpool.Pool) kdbuser.UserInterface {
	return &pgUser{
		Records: tables.Records[uuid.UUID, userRow, domain.User, domain.UserParam]{
			Conn:     pool,
			Table:    table,
			ToRecord: userRow.toUser,
			ToValues: values,
			KeyArg:   func(id uuid.UUID) any { return id.String() },
		},
	}
}

func (u *pgUser) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := u.Table.First(ctx, u.Conn, sq.Eq{`"email"`: email}, "email="+email)
	if err != nil {
		return domain.User{}, err
	}
	return row.toUser()
}
