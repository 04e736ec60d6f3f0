package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	apierr "github.com/opst/aptsales/pkg/api-types-binding/errors"
	apiauth "github.com/opst/aptsales/pkg/api/types/auth"
	"github.com/opst/aptsales/pkg/auth"
	"github.com/opst/aptsales/pkg/domain"
	domerr "github.com/opst/aptsales/pkg/domain/errors"
	kdbuser "github.com/opst/aptsales/pkg/domain/user/db"
)

// name of the cookie holding the admin session token
const SessionCookie = "aptsales_session"

const currentUserKey = "aptsales.current-user"

const (
	msgInactiveUser     = "Inactive user"
	msgBadCredentials   = "Could not validate credentials"
	msgNotAuthenticated = "Not authenticated"
	msgIncorrectLogin   = "Incorrect email or password"
)

// Verifier checks tokens and tells whose they are.
type Verifier interface {
	Verify(aud auth.Audience, token string) (uuid.UUID, error)
}

// Issuer signs tokens.
type Issuer interface {
	Issue(aud auth.Audience, userId uuid.UUID, ttl time.Duration) (string, time.Time, error)
}

// AccessTokenHandler issues an access token for the user in form fields `username` (email) and `password`.
func AccessTokenHandler(users kdbuser.UserInterface, issuer Issuer, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		u, err := auth.Authenticate(ctx, users, c.FormValue("username"), c.FormValue("password"))
		if errors.Is(err, auth.ErrBadCredential) {
			return apierr.BadRequestWithReason(msgIncorrectLogin)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}
		if !u.IsActive {
			return apierr.BadRequestWithReason(msgInactiveUser)
		}

		token, _, err := issuer.Issue(auth.AccessToken, u.Id, ttl)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiauth.Token{AccessToken: token, TokenType: "bearer"})
	}
}

// RequireUser is a middleware which passes requests from active users only.
//
// The user is identified by a bearer token in the Authorization header or,
// when there are no such headers, by the admin session cookie.
// The user is available with CurrentUser in following handlers.
func RequireUser(users kdbuser.UserInterface, verifier Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			var userId uuid.UUID
			if token, ok := bearer(c.Request()); ok {
				id, err := verifier.Verify(auth.AccessToken, token)
				if err != nil {
					return apierr.Forbidden(msgBadCredentials, err)
				}
				userId = id
			} else if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
				id, err := verifier.Verify(auth.Session, cookie.Value)
				if err != nil {
					return apierr.Forbidden(msgBadCredentials, err)
				}
				userId = id
			} else {
				return apierr.Unauthorized(msgNotAuthenticated, nil)
			}

			u, err := users.Get(ctx, userId)
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.Forbidden(msgBadCredentials, err)
			} else if err != nil {
				return apierr.InternalServerError(err)
			}
			if !u.IsActive {
				return apierr.BadRequestWithReason(msgInactiveUser)
			}

			c.Set(currentUserKey, u)
			return next(c)
		}
	}
}

// CurrentUser returns the user passed RequireUser or an admin session middleware.
func CurrentUser(c echo.Context) (domain.User, bool) {
	u, ok := c.Get(currentUserKey).(domain.User)
	return u, ok
}

func bearer(req *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(req.Header.Get(echo.HeaderAuthorization), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
