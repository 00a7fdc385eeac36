package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/barkeep/internal/accounts/service"
	"github.com/aussiebroadwan/barkeep/pkg/httpx"
	"github.com/aussiebroadwan/barkeep/pkg/slogx"
)

type LoginHandler struct {
	AccountService *service.AccountService
	SessionService *service.SessionService
}

// ServeHTTP authenticates credentials and starts a session. The 401 body is
// the same whether the username is unknown or the password is wrong.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	in, err := decodeAccountInput(r)
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Malformed request body",
		})
		return
	}

	account, err := h.AccountService.Login(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteJSON(w, http.StatusUnauthorized, httpx.ErrorResponse{
				Error:            "invalid_credentials",
				ErrorDescription: "Invalid username / password!",
			})
		case errors.Is(err, service.ErrStoreUnavailable):
			httpx.WriteJSON(w, http.StatusServiceUnavailable, httpx.ErrorResponse{
				Error:            "unavailable",
				ErrorDescription: "Please try again later!",
			})
		default:
			log.Error("login failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to log in",
			})
		}
		return
	}

	session, token, err := h.SessionService.Start(ctx, account)
	if err != nil {
		log.Error("failed to start session after login", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Failed to start session",
		})
		return
	}

	setSessionCookie(w, token, session.ExpiresAt)
	httpx.WriteJSON(w, http.StatusOK, SessionResponse{Session: session, Token: token})
}
