package domain

import (
	"fmt"
	"strings"
	"time"
)

// Client is a buyer of an apartment.
type Client struct {
	Id int64

	// serial number printed on documents.
	No int

	Name        string
	IdNo        string
	PhoneNumber string
	JobTitle    string
	IssueDate   *time.Time
	RegistryNo  string
	NewspaperNo string

	// address: district (mahalla), alley (zuqaq) and house (dar).
	M string
	Z string
	D string

	// alternative contact person
	AltName    string
	AltKinship string
	AltPhone   string

	CreatedAt time.Time

	AptId int64
}

// PaddedNo is No formatted in 3 digits at least, like "007".
func (c *Client) PaddedNo() string {
	return fmt.Sprintf("%03d", c.No)
}

type ClientParam struct {
	No          int
	Name        string
	IdNo        string
	PhoneNumber string
	JobTitle    string
	IssueDate   *time.Time
	RegistryNo  string
	NewspaperNo string
	M           string
	Z           string
	D           string
	AltName     string
	AltKinship  string
	AltPhone    string
	AptId       int64
}

func (p ClientParam) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRecord)
	}
	if p.No < 0 {
		return fmt.Errorf("%w: no should not be negative", ErrInvalidRecord)
	}
	if p.AptId <= 0 {
		return fmt.Errorf("%w: apt_id is required", ErrInvalidRecord)
	}
	return nil
}
