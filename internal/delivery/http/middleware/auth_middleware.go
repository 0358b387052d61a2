package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bookrack/internal/delivery/http/response"
	"bookrack/internal/delivery/http/session"
	"bookrack/internal/domain/service"
	"bookrack/internal/infra/metrics"
)

// ContextKeyUsername is where Authenticate stores the resolved identity on
// the echo context.
const ContextKeyUsername = "username"

// AuthMiddleware is the two-stage session gate in front of mutating review
// routes: a session record must exist, and the token it carries must verify.
type AuthMiddleware struct {
	sessions *session.Store
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions *session.Store, tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, tokenSvc: tokenSvc}
}

// Authenticate validates the calling client's session record and token.
// The username set on the context comes from the verified token subject
// only; the record's stored username is never trusted for authorization.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		record, ok := m.sessions.Record(c.Request())
		if !ok {
			metrics.SessionGateDenials.WithLabelValues("presence").Inc()

			return response.Forbidden(c, "NOT_LOGGED_IN", "User not logged in.")
		}

		claims, err := m.tokenSvc.Validate(record.AccessToken)
		if err != nil {
			metrics.SessionGateDenials.WithLabelValues("token").Inc()
			if errors.Is(err, service.ErrTokenExpired) {
				return response.Forbidden(c, "TOKEN_INVALID", "User not authenticated or token expired.")
			}

			return response.Forbidden(c, "TOKEN_INVALID", "User not authenticated or token invalid.")
		}

		c.Set(ContextKeyUsername, claims.Username())

		return next(c)
	}
}
