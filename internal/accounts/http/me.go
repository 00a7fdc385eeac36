package http

import (
	"net/http"

	"github.com/aussiebroadwan/barkeep/pkg/httpx"
)

type MeHandler struct{}

// ServeHTTP returns the caller's session payload. Authentication happens in
// SessionMiddleware; anything reaching here has a live session.
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, session)
}
