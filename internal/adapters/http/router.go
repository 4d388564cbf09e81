// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/registration-flow/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	registrationHandler *handlers.RegistrationHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/interests", handlers.ListInterests)

		r.Post("/registrations", registrationHandler.Start)
		r.Route("/registrations/{id}", func(r chi.Router) {
			r.Get("/", registrationHandler.Get)
			r.Post("/navigate", registrationHandler.Navigate)
			r.Post("/theme", registrationHandler.ToggleTheme)

			// Account-creation screen.
			r.Post("/account/validate", registrationHandler.ValidateAccount)
			r.Post("/account", registrationHandler.SubmitAccount)

			// Profile-setup screen.
			r.Post("/profile", registrationHandler.SubmitProfile)
			r.Post("/profile/skip", registrationHandler.SkipProfile)
			r.Put("/profile/picture", registrationHandler.UploadPicture)
			r.Post("/profile/interests/{interest}", registrationHandler.ToggleInterest)
		})
	})

	return r
}
