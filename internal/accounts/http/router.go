package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/barkeep/internal/accounts/service"
	"github.com/aussiebroadwan/barkeep/internal/accounts/store"
	"github.com/aussiebroadwan/barkeep/pkg/httpx"
	"github.com/aussiebroadwan/barkeep/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AccountService *service.AccountService
	SessionService *service.SessionService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	registerHandler := &RegisterHandler{
		AccountService: r.AccountService,
		SessionService: r.SessionService,
	}
	loginHandler := &LoginHandler{
		AccountService: r.AccountService,
		SessionService: r.SessionService,
	}
	logoutHandler := &LogoutHandler{SessionService: r.SessionService}
	meHandler := &MeHandler{}

	r.Mux.Handle("POST /v1/register", registerHandler)
	r.Mux.Handle("POST /v1/login", loginHandler)

	// Session-scoped endpoints
	r.Mux.Handle("POST /v1/logout",
		httpx.Chain(logoutHandler, SessionMiddleware(r.SessionService)),
	)
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(meHandler, SessionMiddleware(r.SessionService)),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
