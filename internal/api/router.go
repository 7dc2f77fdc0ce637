package api

import (
	"net/http"

	"github.com/ayune/ayune-backend/internal/api/handlers"
	"github.com/ayune/ayune-backend/internal/api/middleware"
	"github.com/ayune/ayune-backend/internal/repository"
	"github.com/ayune/ayune-backend/internal/service"
	"github.com/ayune/ayune-backend/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *websocket.Hub, repos *repository.Repositories) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	accountHandler := handlers.NewAccountHandler(repos.Account)
	doctorHandler := handlers.NewDoctorHandler(repos.Doctor)
	productHandler := handlers.NewProductHandler(repos.Product)
	wsHandler := handlers.NewWebSocketHandler(hub)

	r.Route("/api", func(r chi.Router) {
		// Auth
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Get("/me", authHandler.Me)
		})

		// Account CRUD
		r.Route("/users", func(r chi.Router) {
			r.Get("/", accountHandler.List)
			r.Post("/", accountHandler.Create)
			r.Put("/{id}", accountHandler.Update)
			r.Delete("/{id}", accountHandler.Delete)
		})

		// Doctor CRUD
		r.Route("/doctors", func(r chi.Router) {
			r.Get("/", doctorHandler.List)
			r.Post("/", doctorHandler.Create)
			r.Put("/{id}", doctorHandler.Update)
			r.Delete("/{id}", doctorHandler.Delete)
		})

		// Product CRUD
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Create)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})

		// Real-time broadcast channel
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
