package postgres

import (
	"github.com/google/uuid"
	kpool "github.com/opst/aptsales/pkg/conn/db/postgres/pool"
	"github.com/opst/aptsales/pkg/domain"
	kdbapt "github.com/opst/aptsales/pkg/domain/apartment/db"
	"github.com/opst/aptsales/pkg/domain/internal/db/postgres/tables"
	xe "github.com/opst/aptsales/pkg/errors"
)

type apartmentRow struct {
	Id         int64   `sql:"id"`
	Building   string  `sql:"building"`
	Floor      string  `sql:"floor"`
	AptNo      string  `sql:"apt_no"`
	AptType    string  `sql:"apt_type"`
	UserId     *string `sql:"user_id"`
	Area       float64 `sql:"area"`
	MeterPrice float64 `sql:"meter_price"`
	FullPrice  float64 `sql:"full_price"`
}

func (r apartmentRow) toApartment() (domain.Apartment, error) {
	a := domain.Apartment{
		Id:         r.Id,
		Building:   r.Building,
		Floor:      r.Floor,
		AptNo:      r.AptNo,
		AptType:    r.AptType,
		Area:       r.Area,
		MeterPrice: r.MeterPrice,
		FullPrice:  r.FullPrice,
	}
	if r.UserId != nil {
		id, err := uuid.Parse(*r.UserId)
		if err != nil {
			return domain.Apartment{}, xe.WrapWithNotef(err, "(apartment id=%d)", r.Id)
		}
		a.UserId = &id
	}
	return a, nil
}

func values(p domain.ApartmentParam) map[string]any {
	var userId *string
	if p.UserId != nil {
		s := p.UserId.String()
		userId = &s
	}
	return map[string]any{
		"building":    p.Building,
		"floor":       p.Floor,
		"apt_no":      p.AptNo,
		"apt_type":    p.AptType,
		"user_id":     userId,
		"area":        p.Area,
		"meter_price": p.MeterPrice,
	}
}

func New(pool kpool.Pool) kdbapt.ApartmentInterface {
	return tables.Records[int64, apartmentRow, domain.Apartment, domain.ApartmentParam]{
		Conn: pool,
		Table: tables.Table[apartmentRow]{
			Name: "apartment",
			Key:  "id",
			Columns: []string{
				"id", "building", "floor", "apt_no", "apt_type",
				"user_id", "area", "meter_price", "full_price",
			},
			Listing: domain.ApartmentListing,
		},
		ToRecord: apartmentRow.toApartment,
		ToValues: values,
	}
}
