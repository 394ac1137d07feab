// Package google verifies Google Identity Services ID tokens.
package google

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const DefaultJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

var (
	ErrMissingClientID    = errors.New("google: client id not configured")
	ErrVerificationFailed = errors.New("google: identity verification failed")
)

var validIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// Identity is the normalized result of a verified assertion.
type Identity struct {
	SubjectID  string
	Email      string
	Name       string
	PictureURL string
}

type idTokenClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	jwt.RegisteredClaims
}

// Verifier checks assertion signatures against Google's published keys.
type Verifier struct {
	clientID string
	keyFunc  jwt.Keyfunc
	now      func() time.Time
}

func NewVerifier(clientID string, keyFunc jwt.Keyfunc) *Verifier {
	return &Verifier{
		clientID: clientID,
		keyFunc:  keyFunc,
		now:      time.Now,
	}
}

// NewJWKSVerifier fetches the key set at jwksURL and keeps it refreshed in the
// background until ctx is done.
func NewJWKSVerifier(ctx context.Context, clientID, jwksURL string) (*Verifier, error) {
	if jwksURL == "" {
		jwksURL = DefaultJWKSURL
	}

	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx: ctx,
		RefreshErrorHandler: func(err error) {
			log.Error().Err(err).Str("jwks_url", jwksURL).Msg("Failed to refresh Google JWKS")
		},
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("google: load jwks: %w", err)
	}

	return NewVerifier(clientID, jwks.Keyfunc), nil
}

// VerifyAssertion validates a raw ID token. Every failure is reported as
// ErrVerificationFailed wrapping the underlying reason.
func (v *Verifier) VerifyAssertion(ctx context.Context, raw string) (*Identity, error) {
	if v.clientID == "" {
		return nil, ErrMissingClientID
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}

	claims := &idTokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, v.keyFunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(v.clientID),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}

	if !validIssuer(claims.Issuer) {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrVerificationFailed, claims.Issuer)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrVerificationFailed)
	}

	return claims.identity(), nil
}

func (c *idTokenClaims) identity() *Identity {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = c.Email
	}
	if name == "" {
		name = "User"
	}

	return &Identity{
		SubjectID:  c.Subject,
		Email:      c.Email,
		Name:       name,
		PictureURL: c.Picture,
	}
}

func validIssuer(iss string) bool {
	for _, v := range validIssuers {
		if iss == v {
			return true
		}
	}
	return false
}
