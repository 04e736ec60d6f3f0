package records

import (
	"github.com/opst/aptsales/pkg/utils/rfctime"
)

// User is a user without password hash.
type User struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

type UserForm struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`

	// If nil, it is treated as true.
	IsActive    *bool `json:"is_active"`
	IsSuperuser bool  `json:"is_superuser"`

	// plain password. It is hashed before stored.
	//
	// On update, empty password keeps the current one.
	Password string `json:"password,omitempty"`
}

type Item struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerId     string `json:"owner_id"`
}

type ItemForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerId     string `json:"owner_id"`
}

type Apartment struct {
	Id         int64   `json:"id"`
	Building   string  `json:"building"`
	Floor      string  `json:"floor"`
	AptNo      string  `json:"apt_no"`
	AptType    string  `json:"apt_type"`
	UserId     *string `json:"user_id"`
	Area       float64 `json:"area"`
	MeterPrice float64 `json:"meter_price"`
	FullPrice  float64 `json:"full_price"`
}

type ApartmentForm struct {
	Building   string  `json:"building"`
	Floor      string  `json:"floor"`
	AptNo      string  `json:"apt_no"`
	AptType    string  `json:"apt_type"`
	UserId     *string `json:"user_id"`
	Area       float64 `json:"area"`
	MeterPrice float64 `json:"meter_price"`
}

type Client struct {
	Id          int64           `json:"id"`
	No          int             `json:"no"`
	Name        string          `json:"name"`
	IdNo        string          `json:"id_no"`
	PhoneNumber string          `json:"phone_number"`
	JobTitle    string          `json:"job_title"`
	IssueDate   *rfctime.Date   `json:"issue_date"`
	RegistryNo  string          `json:"registry_no"`
	NewspaperNo string          `json:"newspaper_no"`
	M           string          `json:"m"`
	Z           string          `json:"z"`
	D           string          `json:"d"`
	AltName     string          `json:"alt_name"`
	AltKinship  string          `json:"alt_kinship"`
	AltPhone    string          `json:"alt_phone"`
	CreatedAt   rfctime.RFC3339 `json:"created_at"`
	AptId       int64           `json:"apt_id"`
}

type ClientForm struct {
	No          int           `json:"no"`
	Name        string        `json:"name"`
	IdNo        string        `json:"id_no"`
	PhoneNumber string        `json:"phone_number"`
	JobTitle    string        `json:"job_title"`
	IssueDate   *rfctime.Date `json:"issue_date"`
	RegistryNo  string        `json:"registry_no"`
	NewspaperNo string        `json:"newspaper_no"`
	M           string        `json:"m"`
	Z           string        `json:"z"`
	D           string        `json:"d"`
	AltName     string        `json:"alt_name"`
	AltKinship  string        `json:"alt_kinship"`
	AltPhone    string        `json:"alt_phone"`
	AptId       int64         `json:"apt_id"`
}

type PaymentType struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type PaymentTypeForm struct {
	Name string `json:"name"`
}

type Payment struct {
	Id            int64           `json:"id"`
	DateOfPayment rfctime.RFC3339 `json:"date_of_payment"`
	PaymentTypeId int64           `json:"payment_type_id"`
	Amount        float64         `json:"amount"`
	ClientId      int64           `json:"client_id"`
}

type PaymentForm struct {
	DateOfPayment rfctime.RFC3339 `json:"date_of_payment"`
	PaymentTypeId int64           `json:"payment_type_id"`
	Amount        float64         `json:"amount"`
	ClientId      int64           `json:"client_id"`
}

type HistoryType struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type HistoryTypeForm struct {
	Name string `json:"name"`
}

type History struct {
	Id       int64           `json:"id"`
	TypeId   int64           `json:"type_id"`
	Datetime rfctime.RFC3339 `json:"datetime"`
}

type HistoryForm struct {
	TypeId   int64           `json:"type_id"`
	Datetime rfctime.RFC3339 `json:"datetime"`
}
