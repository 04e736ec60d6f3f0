package records

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	apirecords "github.com/opst/aptsales/pkg/api/types/records"
	"github.com/opst/aptsales/pkg/domain"
	"github.com/opst/aptsales/pkg/utils/rfctime"
)

func ComposeUser(u domain.User) apirecords.User {
	return apirecords.User{
		Id:          u.Id.String(),
		Email:       u.Email,
		FullName:    u.FullName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
	}
}

// UserParam converts the form into domain.UserParam with the password hash.
func UserParam(f apirecords.UserForm, hashedPassword string) domain.UserParam {
	active := true
	if f.IsActive != nil {
		active = *f.IsActive
	}
	return domain.UserParam{
		Email:          f.Email,
		FullName:       f.FullName,
		IsActive:       active,
		IsSuperuser:    f.IsSuperuser,
		HashedPassword: hashedPassword,
	}
}

func ComposeItem(i domain.Item) apirecords.Item {
	return apirecords.Item{
		Id:          i.Id,
		Title:       i.Title,
		Description: i.Description,
		OwnerId:     i.OwnerId.String(),
	}
}

func ItemParam(f apirecords.ItemForm) (domain.ItemParam, error) {
	owner, err := uuid.Parse(f.OwnerId)
	if err != nil {
		return domain.ItemParam{}, fmt.Errorf("%w: owner_id: %s", domain.ErrInvalidRecord, err)
	}
	return domain.ItemParam{
		Title:       f.Title,
		Description: f.Description,
		OwnerId:     owner,
	}, nil
}

func ComposeApartment(a domain.Apartment) apirecords.Apartment {
	var userId *string
	if a.UserId != nil {
		s := a.UserId.String()
		userId = &s
	}
	return apirecords.Apartment{
		Id:         a.Id,
		Building:   a.Building,
		Floor:      a.Floor,
		AptNo:      a.AptNo,
		AptType:    a.AptType,
		UserId:     userId,
		Area:       a.Area,
		MeterPrice: a.MeterPrice,
		FullPrice:  a.FullPrice,
	}
}

func ApartmentParam(f apirecords.ApartmentForm) (domain.ApartmentParam, error) {
	var userId *uuid.UUID
	if f.UserId != nil && *f.UserId != "" {
		u, err := uuid.Parse(*f.UserId)
		if err != nil {
			return domain.ApartmentParam{}, fmt.Errorf("%w: user_id: %s", domain.ErrInvalidRecord, err)
		}
		userId = &u
	}
	return domain.ApartmentParam{
		Building:   f.Building,
		Floor:      f.Floor,
		AptNo:      f.AptNo,
		AptType:    f.AptType,
		UserId:     userId,
		Area:       f.Area,
		MeterPrice: f.MeterPrice,
	}, nil
}

func ComposeClient(c domain.Client) apirecords.Client {
	var issueDate *rfctime.Date
	if c.IssueDate != nil {
		d := rfctime.Date(*c.IssueDate)
		issueDate = &d
	}
	return apirecords.Client{
		Id:          c.Id,
		No:          c.No,
		Name:        c.Name,
		IdNo:        c.IdNo,
		PhoneNumber: c.PhoneNumber,
		JobTitle:    c.JobTitle,
		IssueDate:   issueDate,
		RegistryNo:  c.RegistryNo,
		NewspaperNo: c.NewspaperNo,
		M:           c.M,
		Z:           c.Z,
		D:           c.D,
		AltName:     c.AltName,
		AltKinship:  c.AltKinship,
		AltPhone:    c.AltPhone,
		CreatedAt:   rfctime.RFC3339(c.CreatedAt),
		AptId:       c.AptId,
	}
}

func ClientParam(f apirecords.ClientForm) domain.ClientParam {
	var issueDate *time.Time
	if f.IssueDate != nil {
		t := f.IssueDate.Time()
		issueDate = &t
	}
	return domain.ClientParam{
		No:          f.No,
		Name:        f.Name,
		IdNo:        f.IdNo,
		PhoneNumber: f.PhoneNumber,
		JobTitle:    f.JobTitle,
		IssueDate:   issueDate,
		RegistryNo:  f.RegistryNo,
		NewspaperNo: f.NewspaperNo,
		M:           f.M,
		Z:           f.Z,
		D:           f.D,
		AltName:     f.AltName,
		AltKinship:  f.AltKinship,
		AltPhone:    f.AltPhone,
		AptId:       f.AptId,
	}
}

func ComposePaymentType(p domain.PaymentType) apirecords.PaymentType {
	return apirecords.PaymentType{Id: p.Id, Name: p.Name}
}

func PaymentTypeParam(f apirecords.PaymentTypeForm) domain.PaymentTypeParam {
	return domain.PaymentTypeParam{Name: f.Name}
}

func ComposePayment(p domain.Payment) apirecords.Payment {
	return apirecords.Payment{
		Id:            p.Id,
		DateOfPayment: rfctime.RFC3339(p.DateOfPayment),
		PaymentTypeId: p.PaymentTypeId,
		Amount:        p.Amount,
		ClientId:      p.ClientId,
	}
}

func PaymentParam(f apirecords.PaymentForm) domain.PaymentParam {
	return domain.PaymentParam{
		DateOfPayment: f.DateOfPayment.Time(),
		PaymentTypeId: f.PaymentTypeId,
		Amount:        f.Amount,
		ClientId:      f.ClientId,
	}
}

func ComposeHistoryType(h domain.HistoryType) apirecords.HistoryType {
	return apirecords.HistoryType{Id: h.Id, Name: h.Name}
}

func HistoryTypeParam(f apirecords.HistoryTypeForm) domain.HistoryTypeParam {
	return domain.HistoryTypeParam{Name: f.Name}
}

func ComposeHistory(h domain.History) apirecords.History {
	return apirecords.History{
		Id:       h.Id,
		TypeId:   h.TypeId,
		Datetime: rfctime.RFC3339(h.Datetime),
	}
}

func HistoryParam(f apirecords.HistoryForm) domain.HistoryParam {
	return domain.HistoryParam{
		TypeId:   f.TypeId,
		Datetime: f.Datetime.Time(),
	}
}
