package main

import (
	"net/http"

	"github.com/benkyo/doushi-api/internal/api"
	apiMiddleware "github.com/benkyo/doushi-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.config.Auth,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	verbHandler := api.NewVerbHandler(app.verbService)
	practiceHandler := api.NewPracticeHandler(app.practiceService)
	profileHandler := api.NewProfileHandler(app.profileService)

	r.Route("/api", func(r chi.Router) {
		// Public authentication endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/verbs", verbHandler.List)
			r.Get("/verbs/{id}", verbHandler.Get)
			r.Get("/verbs/{id}/conjugations", verbHandler.Conjugations)

			r.Post("/practice", practiceHandler.Submit)
			r.Get("/reviews/due", practiceHandler.ListDue)

			r.Get("/profile", profileHandler.Get)
			r.Post("/profile/reset", profileHandler.Reset)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
