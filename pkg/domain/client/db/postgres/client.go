package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	kpool "github.com/opst/aptsales/pkg/conn/db/postgres/pool"
	"github.com/opst/aptsales/pkg/domain"
	kdbclient "github.com/opst/aptsales/pkg/domain/client/db"
	"github.com/opst/aptsales/pkg/domain/internal/db/postgres/tables"
)

type clientRow struct {
	Id          int64      `sql:"id"`
	No          int        `sql:"no"`
	Name        string     `sql:"name"`
	IdNo        string     `sql:"id_no"`
	PhoneNumber string     `sql:"phone_number"`
	JobTitle    string     `sql:"job_title"`
	IssueDate   *time.Time `sql:"issue_date"`
	RegistryNo  string     `sql:"registry_no"`
	NewspaperNo string     `sql:"newspaper_no"`
	M           string     `sql:"m"`
	Z           string     `sql:"z"`
	D           string     `sql:"d"`
	AltName     string     `sql:"alt_name"`
	AltKinship  string     `sql:"alt_kinship"`
	AltPhone    string     `sql:"alt_phone"`
	CreatedAt   time.Time  `sql:"created_at"`
	AptId       int64      `sql:"apt_id"`
}

func (r clientRow) toClient() (domain.Client, error) {
	return domain.Client(r), nil
}

func values(p domain.ClientParam) map[string]any {
	return map[string]any{
		"no":           p.No,
		"name":         p.Name,
		"id_no":        p.IdNo,
		"phone_number": p.PhoneNumber,
		"job_title":    p.JobTitle,
		"issue_date":   p.IssueDate,
		"registry_no":  p.RegistryNo,
		"newspaper_no": p.NewspaperNo,
		"m":            p.M,
		"z":            p.Z,
		"d":            p.D,
		"alt_name":     p.AltName,
		"alt_kinship":  p.AltKinship,
		"alt_phone":    p.AltPhone,
		"apt_id":       p.AptId,
	}
}

type pgClient struct {
	tables.Records[int64, clientRow, domain.Client, domain.ClientParam]
}

var _ kdbclient.ClientInterface = &pgClient{}

func New(pool kpool.Pool) kdbclient.ClientInterface {
	return &pgClient{
		Records: tables.Records[int64, clientRow, domain.Client, domain.ClientParam]{
			Conn: pool,
			Table: tables.Table[clientRow]{
				Name: "client",
				Key:  "id",
				Columns: []string{
					"id", "no", "name", "id_no", "phone_number", "job_title",
					"issue_date", "registry_no", "newspaper_no", "m", "z", "d",
					"alt_name", "alt_kinship", "alt_phone", "created_at", "apt_id",
				},
				Listing: domain.ClientListing,
			},
			ToRecord: clientRow.toClient,
			ToValues: values,
		},
	}
}

func (c *pgClient) GetByApartment(ctx context.Context, aptId int64) (domain.Client, error) {
	row, err := c.Table.First(ctx, c.Conn, sq.Eq{`"apt_id"`: aptId}, fmt.Sprintf("apt_id=%d", aptId))
	if err != nil {
		return domain.Client{}, err
	}
	return row.toClient()
}
