package api

import (
	"net/http"
	"time"

	"jobboard/internal/api/handler"
	"jobboard/internal/api/middleware"
	"jobboard/internal/app/service"
	"jobboard/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(
	authService *service.AuthService,
	userService *service.UserService,
	jobService *service.JobService,
	tokens *security.TokenManager,
	cookieMaxAge time.Duration,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	auth := middleware.NewAuthenticator(tokens)

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService, cookieMaxAge)
		v1.Group(func(publicAuth chi.Router) {
			authHandler.RegisterRoutes(publicAuth)
		})

		// Profile routes (session required)
		userHandler := handler.NewUserHandler(userService)
		v1.Group(func(protected chi.Router) {
			protected.Use(auth.RequireAuth)
			userHandler.RegisterRoutes(protected)
		})

		// Job routes (listing public, posting recruiter-only)
		jobHandler := handler.NewJobHandler(jobService, auth)
		v1.Route("/jobs", jobHandler.RegisterRoutes)
	})

	return r
}
