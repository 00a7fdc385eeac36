package http

import (
	"net/http"

	"github.com/aussiebroadwan/barkeep/internal/accounts/service"
	"github.com/aussiebroadwan/barkeep/pkg/httpx"
	"github.com/aussiebroadwan/barkeep/pkg/slogx"
)

type LogoutHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP destroys the authenticated session and clears the cookie.
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	session, ok := sessionFromContext(ctx)
	if !ok {
		writeUnauthenticated(w)
		return
	}

	if err := h.SessionService.End(ctx, session.ID); err != nil {
		log.Error("failed to end session", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to log out",
		})
		return
	}

	clearSessionCookie(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
