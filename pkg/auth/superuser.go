package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/opst/aptsales/pkg/domain"
	domerr "github.com/opst/aptsales/pkg/domain/errors"
	kdbuser "github.com/opst/aptsales/pkg/domain/user/db"
	xe "github.com/opst/aptsales/pkg/errors"
)

// EnsureSuperuser makes the user having email an active superuser with the password.
//
// When there are no such users, it creates one.
// Otherwise the user is updated. Empty fullName keeps the current name.
//
// # Returns
//
// - domain.User: the superuser
//
// - bool: true if the user is created
//
// - error
func EnsureSuperuser(
	ctx context.Context,
	users kdbuser.UserInterface,
	email string,
	fullName string,
	password string,
) (domain.User, bool, error) {
	if password == "" {
		return domain.User{}, false, fmt.Errorf("%w: password is required", domerr.ErrInvalid)
	}
	hashed, err := HashPassword(password)
	if err != nil {
		return domain.User{}, false, err
	}
	p := domain.UserParam{
		Email:          email,
		FullName:       fullName,
		IsActive:       true,
		IsSuperuser:    true,
		HashedPassword: hashed,
	}

	current, err := users.GetByEmail(ctx, email)
	if errors.Is(err, domerr.ErrMissing) {
		u, err := users.Create(ctx, p)
		if err != nil {
			return domain.User{}, false, xe.WrapWithNote("creating superuser", err)
		}
		return u, true, nil
	} else if err != nil {
		return domain.User{}, false, xe.Wrap(err)
	}

	if p.FullName == "" {
		p.FullName = current.FullName
	}
	u, err := users.Update(ctx, current.Id, p)
	if err != nil {
		return domain.User{}, false, xe.WrapWithNote("updating superuser", err)
	}
	return u, false, nil
}
