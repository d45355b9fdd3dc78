package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/devfolio-backend/auth"
	"github.com/rpupo63/devfolio-backend/config"
	"github.com/rpupo63/devfolio-backend/pages"
	"github.com/rpupo63/devfolio-backend/services"
	"github.com/rpupo63/devfolio-backend/storage"
	"github.com/rs/zerolog/log"
)

// Dependencies are the wired components the HTTP surface serves.
type Dependencies struct {
	Services      *services.Services
	Authenticator *auth.Authenticator
	Store         storage.Store
	GitHub        pages.StatsSource
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(c map[string]string, deps Dependencies) (Server, error) {
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(deps, withConfig(c), withStartupTime(startupTime))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 180),
		WriteTimeout: config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 180),
		IdleTimeout:  config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 180),
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(deps Dependencies, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	secureCookies := config.GetBool(router.config, "COOKIE_SECURE", true)
	handlers := initializeHandlers(deps, secureCookies)
	authMiddleware := newAuthMiddleware(deps.Authenticator, secureCookies)

	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS")
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	chiRouter.Get("/healthz", healthz(router.startupTime))

	chiRouter.Group(func(r chi.Router) {
		if config.GetString(router.config, "LOG_FORMAT", "") == "console" {
			r.Use(ColoredHTTPLoggingMiddleware)
		}
		r.Use(authMiddleware.loadSession)

		setupPageRoutes(r, handlers, authMiddleware)
		setupAuthRoutes(r, handlers, authMiddleware)
		setupAPIRoutes(r, handlers, authMiddleware)
	})

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
