package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/wellbeing-api/internal/api"
	apiMiddleware "github.com/phrazzld/wellbeing-api/internal/api/middleware"
)

// setupRouter configures the application router with all middleware and
// routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(apiMiddleware.Trace)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)
	userHandler := api.NewUserHandler(
		app.userStore,
		app.checkInStore,
		app.passwordVerifier,
		app.logger,
	)
	checkInHandler := api.NewCheckInHandler(app.checkInStore, app.logger)
	journalHandler := api.NewJournalHandler(app.journalStore, app.logger)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public authentication endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Everything else requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/change-password", authHandler.ChangePassword)

			r.Get("/user", userHandler.GetCurrentUser)
			r.Put("/user", userHandler.UpdateUser)
			r.Delete("/user", userHandler.DeleteUser)

			r.Post("/user/check-ins", checkInHandler.CreateCheckIn)
			r.Get("/user/check-ins", checkInHandler.ListCheckIns)
			r.Get("/user/check-ins/{id}", checkInHandler.GetCheckIn)
			r.Put("/user/check-ins/{id}", checkInHandler.UpdateCheckIn)
			r.Delete("/user/check-ins/{id}", checkInHandler.DeleteCheckIn)

			r.Get("/user/journal", journalHandler.GetJournal)
			r.Post("/user/journal/pages", journalHandler.CreatePage)
			r.Get("/user/journal/pages/search", journalHandler.SearchPages)
			r.Get("/user/journal/pages/{id}", journalHandler.GetPage)
			r.Put("/user/journal/pages/{id}", journalHandler.UpdatePage)
			r.Delete("/user/journal/pages/{id}", journalHandler.DeletePage)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
