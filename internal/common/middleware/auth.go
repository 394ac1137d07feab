package middleware

import (
	"errors"
	"strings"

	apperrors "current-backend/internal/common/errors"
	"current-backend/internal/features/auth/token"

	"github.com/gin-gonic/gin"
)

const (
	ClaimsKey = "claims"
	UserIDKey = "user_id"
)

const invalidCredentialMessage = "Invalid/expired token"

// CredentialVerifier validates a session credential.
type CredentialVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// RequireAuth verifies the bearer credential on every request and stores its
// claims in the context.
func RequireAuth(verifier CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithError(c, apperrors.NewUnauthorizedError(invalidCredentialMessage, errors.New("missing bearer token")))
			return
		}

		claims, err := verifier.Verify(raw)
		if err != nil {
			if errors.Is(err, token.ErrMissingSecret) {
				abortWithError(c, apperrors.NewConfigurationError("JWT_SECRET", err))
				return
			}
			abortWithError(c, apperrors.NewUnauthorizedError(invalidCredentialMessage, err))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.SubjectID())
		c.Next()
	}
}

// RequireRole lets the request through only when the credential carries one
// of roles.
func RequireRole(message string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			abortWithError(c, apperrors.NewUnauthorizedError(invalidCredentialMessage, errors.New("no claims in context")))
			return
		}
		if err := Authorize(claims, message, roles...); err != nil {
			abortWithError(c, err)
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole("Admin only", "admin")
}

// Authorize returns a FORBIDDEN error unless claims hold one of roles.
func Authorize(claims *token.Claims, message string, roles ...string) error {
	for _, r := range roles {
		if claims.Role == r {
			return nil
		}
	}
	return apperrors.NewForbiddenError(message).
		WithDetail("role", claims.Role).
		WithUserID(claims.SubjectID())
}

// ClaimsFrom returns the claims stored by RequireAuth.
func ClaimsFrom(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok && claims != nil
}

func bearerToken(header string) (string, bool) {
	scheme, raw, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
