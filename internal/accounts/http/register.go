package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/barkeep/internal/accounts/service"
	"github.com/aussiebroadwan/barkeep/pkg/httpx"
	"github.com/aussiebroadwan/barkeep/pkg/slogx"
)

type RegisterHandler struct {
	AccountService *service.AccountService
	SessionService *service.SessionService
}

// ServeHTTP creates a new account and starts a session for it. Validation
// problems come back as a 400 with every message in rule order so the
// client can display them all at once.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	account, err := h.AccountService.Register(ctx, in)
	if err != nil {
		var verrs service.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
				Error:  "invalid_request",
				Errors: verrs,
			})
		case errors.Is(err, service.ErrAccountExists):
			httpx.WriteJSON(w, http.StatusConflict, httpx.ErrorResponse{
				Error:            "conflict",
				ErrorDescription: "Account already exists, please try again",
			})
		default:
			log.Error("registration failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Failed to register account",
			})
		}
		return
	}

	session, token, err := h.SessionService.Start(ctx, account)
	if err != nil {
		log.Error("failed to start session after registration", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Account created but session could not be started",
		})
		return
	}

	setSessionCookie(w, token, session.ExpiresAt)
	httpx.WriteJSON(w, http.StatusOK, SessionResponse{Session: session, Token: token})
}
