package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/viniciusmog/daily-diet-api/internal/api/handlers"
	"github.com/viniciusmog/daily-diet-api/internal/api/middleware"
	"github.com/viniciusmog/daily-diet-api/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	userHandler := handlers.NewUserHandler(services.Auth)
	mealHandler := handlers.NewMealHandler(services.Meal)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.Create)
		r.Get("/", userHandler.List)
	})

	r.Route("/meals", func(r chi.Router) {
		// Public listing
		r.Get("/", mealHandler.ListAll)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Post("/", mealHandler.Create)
			r.Get("/summary", mealHandler.Summary)
			r.Get("/user/{id}", mealHandler.ListByUser)
			r.Get("/{id}", mealHandler.Get)
			r.Put("/{id}", mealHandler.Update)
			r.Delete("/{id}", mealHandler.Delete)
		})
	})

	return r
}
