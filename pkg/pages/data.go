package pages

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/opst/aptsales/pkg/domain"
	kdbapt "github.com/opst/aptsales/pkg/domain/apartment/db"
	kdbclient "github.com/opst/aptsales/pkg/domain/client/db"
	xe "github.com/opst/aptsales/pkg/errors"
	"github.com/opst/aptsales/pkg/qr"
)

// QR information sheet
type Page1Data struct {
	Id        string
	Buildng   string
	Floor     string
	Apartment string
	QRCode    template.URL
}

// client information
type Page2Data struct {
	Date              time.Time
	Id                string
	CustomerName      string
	UnifiedCardNumber string
	IdNumber          string
	RegistryNumber    string
	NewspaperNumber   string
	IssueDate         *time.Time
	District          string
	Street            string
	House             string
	AltDistrict       string
	AltStreet         string
	AltHouse          string
	PhoneNumber       string
	JobTitle          string
	AltPersonName     string
	Relationship      string
	AltPersonNumber   string
}

// apartment information
type Page3Data struct {
	Id              string
	Date            time.Time
	ApartmentNumber string
	Building        string
	Floor           string
	Apartment       string
	Area            float64
}

// contract pages depending on apartment type
type AptTypeData struct {
	AptType string
}

// price page
type Page10Data struct {
	Price float64
	Area  float64
}

// Builder looks up records and builds data for page templates.
type Builder struct {
	apartments kdbapt.ApartmentInterface
	clients    kdbclient.ClientInterface
}

func NewBuilder(apartments kdbapt.ApartmentInterface, clients kdbclient.ClientInterface) *Builder {
	return &Builder{apartments: apartments, clients: clients}
}

func padded(no int) string {
	return fmt.Sprintf("%03d", no)
}

func (b *Builder) apartment(ctx context.Context, aptId int64) (domain.Apartment, error) {
	apt, err := b.apartments.Get(ctx, aptId)
	if err != nil {
		return domain.Apartment{}, xe.Wrap(notFound(ApartmentNotFound, err))
	}
	return apt, nil
}

func (b *Builder) clientOf(ctx context.Context, aptId int64) (domain.Client, error) {
	c, err := b.clients.GetByApartment(ctx, aptId)
	if err != nil {
		return domain.Client{}, xe.Wrap(notFound(ClientNotFound, err))
	}
	return c, nil
}

// Page1 builds the QR information sheet.
//
// no is printed as the serial number of the sheet. The QR code is made from
// the apartment and its first client.
func (b *Builder) Page1(ctx context.Context, no int, aptId int64) (Page1Data, error) {
	apt, err := b.apartment(ctx, aptId)
	if err != nil {
		return Page1Data{}, err
	}
	client, err := b.clientOf(ctx, aptId)
	if err != nil {
		return Page1Data{}, err
	}

	uri, err := qr.DataURI(qr.NewPayload(client, apt))
	if err != nil {
		return Page1Data{}, xe.Wrap(err)
	}

	return Page1Data{
		Id:        padded(no) + " : " + "العدد",
		Buildng:   apt.Building + " | " + "العمارة",
		Floor:     apt.Floor + " | " + "الطابق",
		Apartment: apt.AptNo + " | " + "الشقة",
		QRCode:    template.URL(uri),
	}, nil
}

func (b *Builder) Page2(ctx context.Context, clientId int64) (Page2Data, error) {
	c, err := b.clients.Get(ctx, clientId)
	if err != nil {
		return Page2Data{}, xe.Wrap(notFound(ClientNotFound, err))
	}

	return Page2Data{
		Date:              c.CreatedAt,
		Id:                padded(c.No),
		CustomerName:      c.Name,
		UnifiedCardNumber: c.IdNo,
		IdNumber:          c.IdNo,
		RegistryNumber:    c.RegistryNo,
		NewspaperNumber:   c.NewspaperNo,
		IssueDate:         c.IssueDate,
		District:          c.M,
		Street:            c.Z,
		House:             c.D,
		AltDistrict:       c.M,
		AltStreet:         c.Z,
		AltHouse:          c.D,
		PhoneNumber:       c.PhoneNumber,
		JobTitle:          c.JobTitle,
		AltPersonName:     c.AltName,
		Relationship:      c.AltKinship,
		AltPersonNumber:   c.AltPhone,
	}, nil
}

func (b *Builder) Page3(ctx context.Context, aptId int64) (Page3Data, error) {
	apt, err := b.apartment(ctx, aptId)
	if err != nil {
		return Page3Data{}, err
	}
	c, err := b.clientOf(ctx, aptId)
	if err != nil {
		return Page3Data{}, err
	}

	return Page3Data{
		Id:              padded(c.No),
		Date:            c.CreatedAt,
		ApartmentNumber: apt.AptNo,
		Building:        apt.Building,
		Floor:           apt.Floor,
		Apartment:       apt.AptType,
		Area:            apt.Area,
	}, nil
}

// AptType builds data for page 8 and 9.
func (b *Builder) AptType(ctx context.Context, aptId int64) (AptTypeData, error) {
	apt, err := b.apartment(ctx, aptId)
	if err != nil {
		return AptTypeData{}, err
	}
	return AptTypeData{AptType: apt.AptType}, nil
}

func (b *Builder) Page10(ctx context.Context, aptId int64) (Page10Data, error) {
	apt, err := b.apartment(ctx, aptId)
	if err != nil {
		return Page10Data{}, err
	}
	return Page10Data{Price: apt.MeterPrice, Area: apt.Area}, nil
}

// Data builds data of the page n.
//
// Static pages (4 to 7) have nil data.
func (b *Builder) Data(ctx context.Context, n Number, p Params) (any, error) {
	switch n {
	case Page1:
		return b.Page1(ctx, p.No, p.AptId)
	case Page2:
		return b.Page2(ctx, p.ClientId)
	case Page3:
		return b.Page3(ctx, p.AptId)
	case Page4, Page5, Page6, Page7:
		return nil, nil
	case Page8, Page9:
		return b.AptType(ctx, p.AptId)
	case Page10:
		return b.Page10(ctx, p.AptId)
	default:
		return nil, fmt.Errorf("unknown page: %d", n)
	}
}
