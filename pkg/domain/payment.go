package domain

import (
	"fmt"
	"strings"
	"time"
)

type PaymentType struct {
	Id   int64
	Name string
}

type PaymentTypeParam struct {
	Name string
}

func (p PaymentTypeParam) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRecord)
	}
	return nil
}

type Payment struct {
	Id            int64
	DateOfPayment time.Time
	PaymentTypeId int64
	Amount        float64
	ClientId      int64
}

type PaymentParam struct {
	DateOfPayment time.Time
	PaymentTypeId int64
	Amount        float64
	ClientId      int64
}

func (p PaymentParam) Validate() error {
	if p.DateOfPayment.IsZero() {
		return fmt.Errorf("%w: date_of_payment is required", ErrInvalidRecord)
	}
	if p.PaymentTypeId <= 0 {
		return fmt.Errorf("%w: payment_type_id is required", ErrInvalidRecord)
	}
	if p.ClientId <= 0 {
		return fmt.Errorf("%w: client_id is required", ErrInvalidRecord)
	}
	if p.Amount < 0 {
		return fmt.Errorf("%w: amount should not be negative", ErrInvalidRecord)
	}
	return nil
}
