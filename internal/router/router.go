package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chirpy/internal/config"
	"chirpy/internal/handler"
	"chirpy/internal/metrics"
	"chirpy/internal/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Chirp   *handler.ChirpHandler
	Admin   *handler.AdminHandler
	Webhook *handler.WebhookHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, counter *metrics.Counter, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	// Static site, counted into the admin metrics page.
	fileServer := http.StripPrefix("/app", http.FileServer(http.Dir(cfg.StaticDir)))
	r.With(middleware.CountHits(counter)).Handle("/app", fileServer)
	r.With(middleware.CountHits(counter)).Handle("/app/*", fileServer)

	r.Route("/admin", func(admin chi.Router) {
		admin.Get("/metrics", h.Admin.Metrics)
		admin.Post("/reset", h.Admin.Reset)
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Get("/healthz", handler.Readiness)

		api.Post("/login", h.Auth.Login)
		api.Post("/refresh", h.Auth.Refresh)
		api.Post("/revoke", h.Auth.Revoke)

		api.Post("/users", h.User.Create)
		api.With(authMiddleware.RequireAuth).Put("/users", h.User.Update)

		api.With(authMiddleware.RequireAuth).Post("/chirps", h.Chirp.Create)
		api.Get("/chirps", h.Chirp.List)
		api.Get("/chirps/{chirpID}", h.Chirp.Get)
		api.With(authMiddleware.RequireAuth).Delete("/chirps/{chirpID}", h.Chirp.Delete)

		api.Post("/polka/webhooks", h.Webhook.Polka)
	})

	return r
}
