package domain

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

type User struct {
	Id             uuid.UUID
	Email          string
	FullName       string
	IsActive       bool
	IsSuperuser    bool
	HashedPassword string
}

// CanAdminister reports whether the user may sign in the admin dashboard.
func (u *User) CanAdminister() bool {
	return u != nil && u.IsActive && u.IsSuperuser
}

// UserParam is a set of values to create or update a User.
type UserParam struct {
	Email       string
	FullName    string
	IsActive    bool
	IsSuperuser bool

	// HashedPassword is left unchanged on update when it is empty.
	HashedPassword string
}

func (p UserParam) Validate() error {
	email := strings.TrimSpace(p.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidRecord)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email %q is malformed", ErrInvalidRecord, p.Email)
	}
	return nil
}
