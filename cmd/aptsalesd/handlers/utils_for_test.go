package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	apierr "github.com/opst/aptsales/pkg/api/types/errors"
	"github.com/opst/aptsales/pkg/auth"
	"github.com/opst/aptsales/pkg/domain"
	domerr "github.com/opst/aptsales/pkg/domain/errors"
	usermocks "github.com/opst/aptsales/pkg/domain/user/db/mock"
)

var (
	secret = []byte("secret-for-test")
	now    = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
)

func newSigner() *auth.Signer {
	return auth.NewSigner(secret, auth.WithClock(func() time.Time { return now }))
}

// hashed "correct-horse"
var hashedPassword = func() string {
	h, err := auth.HashPassword("correct-horse")
	if err != nil {
		panic(err)
	}
	return h
}()

var (
	adminUser = domain.User{
		Id: uuid.MustParse("6f1c53c4-55e9-4d43-9d8b-1d0e6a1b0001"), Email: "admin@example.com",
		FullName: "Admin", IsActive: true, IsSuperuser: true, HashedPassword: hashedPassword,
	}
	staffUser = domain.User{
		Id: uuid.MustParse("6f1c53c4-55e9-4d43-9d8b-1d0e6a1b0002"), Email: "staff@example.com",
		FullName: "Staff", IsActive: true, HashedPassword: hashedPassword,
	}
	retiredUser = domain.User{
		Id: uuid.MustParse("6f1c53c4-55e9-4d43-9d8b-1d0e6a1b0003"), Email: "retired@example.com",
		FullName: "Retired", IsSuperuser: true, HashedPassword: hashedPassword,
	}
)

// newUsers returns a mocked user store having users.
func newUsers(users ...domain.User) *usermocks.UserInterface {
	m := usermocks.NewUserInterface()
	m.Impl.Get = func(ctx context.Context, id uuid.UUID) (domain.User, error) {
		for _, u := range users {
			if u.Id == id {
				return u, nil
			}
		}
		return domain.User{}, fmt.Errorf("user %s: %w", id, domerr.ErrMissing)
	}
	m.ByEmail.Impl = func(ctx context.Context, email string) (domain.User, error) {
		for _, u := range users {
			if u.Email == email {
				return u, nil
			}
		}
		return domain.User{}, fmt.Errorf("user %s: %w", email, domerr.ErrMissing)
	}
	return m
}

func tokenFor(t *testing.T, aud auth.Audience, u domain.User) string {
	t.Helper()
	tok, _, err := newSigner().Issue(aud, u.Id, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func sessionOf(t *testing.T, u domain.User) *http.Cookie {
	return &http.Cookie{Name: "aptsales_session", Value: tokenFor(t, auth.Session, u)}
}

// assertHTTPError checks err is *echo.HTTPError with code and, if not empty, reason.
func assertHTTPError(t *testing.T, err error, code int, reason string) {
	t.Helper()
	var herr *echo.HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
	}
	if herr.Code != code {
		t.Errorf("status code: actual = %d, expected = %d (%v)", herr.Code, code, herr.Message)
	}
	if reason == "" {
		return
	}
	msg, ok := herr.Message.(apierr.ErrorMessage)
	if !ok {
		t.Fatalf("message is not ErrorMessage: %#v", herr.Message)
	}
	if msg.Reason != reason {
		t.Errorf("reason: actual = %q, expected = %q", msg.Reason, reason)
	}
}
