package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Item struct {
	Id          int64
	Title       string
	Description string
	OwnerId     uuid.UUID
}

type ItemParam struct {
	Title       string
	Description string
	OwnerId     uuid.UUID
}

func (p ItemParam) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidRecord)
	}
	if p.OwnerId == uuid.Nil {
		return fmt.Errorf("%w: owner_id is required", ErrInvalidRecord)
	}
	return nil
}
