package domain

import (
	"fmt"
	"strings"
	"time"
)

type HistoryType struct {
	Id   int64
	Name string
}

type HistoryTypeParam struct {
	Name string
}

func (p HistoryTypeParam) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRecord)
	}
	return nil
}

type History struct {
	Id       int64
	TypeId   int64
	Datetime time.Time
}

type HistoryParam struct {
	TypeId   int64
	Datetime time.Time
}

func (p HistoryParam) Validate() error {
	if p.TypeId <= 0 {
		return fmt.Errorf("%w: type_id is required", ErrInvalidRecord)
	}
	if p.Datetime.IsZero() {
		return fmt.Errorf("%w: datetime is required", ErrInvalidRecord)
	}
	return nil
}
