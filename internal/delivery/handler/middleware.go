package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"todolist-service/internal/domain/entities"
	"todolist-service/internal/infrastructure/session"
)

const (
	sessionCookie    = "session"
	currentUserKey   = "current_user"
	sessionClaimsKey = "session_claims"
)

// RequireSession verifies the signed session cookie. Browsers without a
// valid one are sent to the login form rather than given a bare 401.
func RequireSession(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + sessionCookie,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(session.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusFound, "/login")
		},
	})
}

// ResolveUser runs after RequireSession: it checks the server-side session
// record still exists and loads the user into the request context. A cookie
// that outlived its session (logout, expiry) is cleared and bounced to the
// login form.
func (h *Handler) ResolveUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		claims, ok := token.Claims.(*session.Claims)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}

		user, err := h.auth.CurrentUser(c.Request().Context(), claims)
		if err != nil || user == nil {
			h.clearSessionCookie(c)
			return c.Redirect(http.StatusFound, "/login")
		}

		c.Set(currentUserKey, user)
		c.Set(sessionClaimsKey, claims)
		return next(c)
	}
}

// OptionalSession resolves the session identity on public routes when a
// valid cookie is present, and continues anonymously when it is not.
func (h *Handler) OptionalSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		claims, err := h.tokens.Parse(cookie.Value)
		if err != nil {
			return next(c)
		}

		user, err := h.auth.CurrentUser(c.Request().Context(), claims)
		if err != nil || user == nil {
			return next(c)
		}

		c.Set(currentUserKey, user)
		c.Set(sessionClaimsKey, claims)
		return next(c)
	}
}

// CurrentUser returns the identity resolved for this request, or nil for an
// anonymous request.
func CurrentUser(c echo.Context) *entities.User {
	user, _ := c.Get(currentUserKey).(*entities.User)
	return user
}

func sessionClaims(c echo.Context) *session.Claims {
	claims, _ := c.Get(sessionClaimsKey).(*session.Claims)
	return claims
}
