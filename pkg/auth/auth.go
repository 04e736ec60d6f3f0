package auth

import (
	"context"
	"errors"

	"github.com/opst/aptsales/pkg/domain"
	domerr "github.com/opst/aptsales/pkg/domain/errors"
	kdbuser "github.com/opst/aptsales/pkg/domain/user/db"
	xe "github.com/opst/aptsales/pkg/errors"
)

var (
	// email or password is wrong
	ErrBadCredential = errors.New("incorrect email or password")

	ErrInactiveUser = errors.New("inactive user")

	// user is not allowed to sign in the admin dashboard
	ErrNotAdministrator = errors.New("not an administrator")
)

// Authenticate finds the user having email and checks password.
//
// # Returns
//
// - domain.User: the user, when the password is correct.
//
// - error: [ErrBadCredential] when there are no such users or the password is wrong.
// Other errors come from the store.
func Authenticate(ctx context.Context, users kdbuser.UserInterface, email string, password string) (domain.User, error) {
	u, err := users.GetByEmail(ctx, email)
	if errors.Is(err, domerr.ErrMissing) {
		return domain.User{}, ErrBadCredential
	} else if err != nil {
		return domain.User{}, xe.Wrap(err)
	}
	if !VerifyPassword(u.HashedPassword, password) {
		return domain.User{}, ErrBadCredential
	}
	return u, nil
}

// AuthenticateAdmin is Authenticate which also requires the user to be an active superuser.
func AuthenticateAdmin(ctx context.Context, users kdbuser.UserInterface, email string, password string) (domain.User, error) {
	u, err := Authenticate(ctx, users, email, password)
	if err != nil {
		return domain.User{}, err
	}
	if !u.CanAdminister() {
		return domain.User{}, ErrNotAdministrator
	}
	return u, nil
}
