package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Apartment struct {
	Id       int64
	Building string
	Floor    string
	AptNo    string
	AptType  string

	// owner account, if any
	UserId *uuid.UUID

	// area in square meters
	Area float64

	// price per square meter
	MeterPrice float64

	// FullPrice is Area * MeterPrice, maintained by the database.
	FullPrice float64
}

// TotalPrice computes the price of the apartment from its area.
func (a *Apartment) TotalPrice() float64 {
	return a.Area * a.MeterPrice
}

type ApartmentParam struct {
	Building   string
	Floor      string
	AptNo      string
	AptType    string
	UserId     *uuid.UUID
	Area       float64
	MeterPrice float64
}

func (p ApartmentParam) Validate() error {
	if strings.TrimSpace(p.Building) == "" {
		return fmt.Errorf("%w: building is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(p.AptNo) == "" {
		return fmt.Errorf("%w: apt_no is required", ErrInvalidRecord)
	}
	if p.Area < 0 {
		return fmt.Errorf("%w: area should not be negative", ErrInvalidRecord)
	}
	if p.MeterPrice < 0 {
		return fmt.Errorf("%w: meter_price should not be negative", ErrInvalidRecord)
	}
	return nil
}
