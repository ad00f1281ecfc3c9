package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/edeboer/warehoused/internal/api/http/handler"
	"github.com/edeboer/warehoused/internal/api/http/middleware"
	"github.com/edeboer/warehoused/internal/logger"
)

// Router assembles the HTTP surface: session boundary, admin management and
// the key-authenticated API.
type Router struct {
	authHandler  *handler.Auth
	adminHandler *handler.Admin
	apiHandler   *handler.API
	authenticate *middleware.Authenticate
	logger       *logger.Logger
}

// New creates a router from its handlers and the authentication middleware.
func New(
	authHandler *handler.Auth,
	adminHandler *handler.Admin,
	apiHandler *handler.API,
	authenticate *middleware.Authenticate,
	logger *logger.Logger,
) *Router {
	return &Router{
		authHandler:  authHandler,
		adminHandler: adminHandler,
		apiHandler:   apiHandler,
		authenticate: authenticate,
		logger:       logger,
	}
}

// Register mounts all routes and returns the root handler.
func (r *Router) Register() http.Handler {
	mux := chi.NewRouter()

	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	mux.Use(r.authenticate.Handler)

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	mux.Post("/login", r.authHandler.Login)
	mux.Post("/logout", r.authHandler.Logout)

	mux.Group(func(protected chi.Router) {
		protected.Use(r.authenticate.RequireUser)
		protected.Get("/me", r.authHandler.Me)
	})

	mux.Route("/admin", func(admin chi.Router) {
		admin.Use(r.authenticate.RequireAdmin)
		admin.Get("/users", r.adminHandler.Users)
		admin.Get("/apikeys", r.adminHandler.APIKeys)
		admin.Post("/apikeys", r.adminHandler.CreateAPIKey)
	})

	mux.Route("/api", func(api chi.Router) {
		api.Use(r.authenticate.RequireAPIKey)
		api.Get("/whoami", r.apiHandler.Whoami)
	})

	return mux
}
