package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken error = errors.New("invalid token")

const issuer = "aptsales"

// Audience tells what a token is issued for.
type Audience string

const (
	// tokens for `Authorization: Bearer ...`
	AccessToken Audience = "access-token"

	// tokens in the admin session cookie
	Session Audience = "admin-session"
)

// Signer issues and verifies HS256 JWTs whose subject is a user id.
type Signer struct {
	secret []byte
	now    func() time.Time
}

type SignerOption func(*Signer) *Signer

// WithClock replaces the clock used to issue and verify tokens.
func WithClock(now func() time.Time) SignerOption {
	return func(s *Signer) *Signer {
		s.now = now
		return s
	}
}

func NewSigner(secret []byte, options ...SignerOption) *Signer {
	s := &Signer{secret: secret, now: time.Now}
	for _, o := range options {
		s = o(s)
	}
	return s
}

// Issue signs a new token for the user.
//
// # Returns
//
// - string: JWS token string
//
// - time.Time: expiration of the token
//
// - error: from [jwt.Token.SignedString]
func (s *Signer) Issue(aud Audience, userId uuid.UUID, ttl time.Duration) (string, time.Time, error) {
	now := s.now().Truncate(time.Second)
	exp := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userId.String(),
		Audience:  jwt.ClaimStrings{string(aud)},
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify checks the token and returns the user id in its subject.
//
// # Returns
//
// - uuid.UUID: the user id
//
// - error: wrapping [ErrInvalidToken] when the token is malformed, expired,
// signed with another key or issued for another audience.
func (s *Signer) Verify(aud Audience, token string) (uuid.UUID, error) {
	tok, err := jwt.ParseWithClaims(
		token, new(jwt.RegisteredClaims),
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(string(aud)),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: unexpected claims type: %T", ErrInvalidToken, tok.Claims)
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidToken, err)
	}
	return id, nil
}
