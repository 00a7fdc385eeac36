package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/barkeep/internal/accounts/domain"
	"github.com/aussiebroadwan/barkeep/internal/accounts/service"
	"github.com/aussiebroadwan/barkeep/pkg/httpx"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "barkeep_session"

type sessionCtxKey struct{}

// SessionResponse is returned by login and register. Token is the same
// signed value as the cookie, for API clients that present it as a Bearer
// header instead.
type SessionResponse struct {
	Session domain.Session `json:"session"`
	Token   string         `json:"token"`
}

// SessionMiddleware authenticates requests by resolving a session token
// from the session cookie or an Authorization: Bearer header.
func SessionMiddleware(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				writeUnauthenticated(w)
				return
			}

			session, err := sessions.Resolve(r.Context(), token)
			if err != nil {
				writeUnauthenticated(w)
				return
			}

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFromContext returns the authenticated session placed by
// SessionMiddleware, if any.
func sessionFromContext(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(domain.Session)
	return s, ok
}

func tokenFromRequest(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

func writeUnauthenticated(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, httpx.ErrorResponse{
		Error:            "unauthenticated",
		ErrorDescription: "No active session",
	})
}

// setSessionCookie attaches the signed token to the response, scoped and
// expiring alongside the session itself.
func setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie tells the client to drop its session cookie.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
