package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/portfolio-site/backend/services"
)

// setupRoutes wires every route. Reads are public; project mutations require
// the admin secret or a session token from the login endpoint.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Liveness probe for process supervisors, side-effect-free
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/api/admin/login", handlers.authHandler.login())

		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Get("/api/projects/{projectID}", handlers.projectHandler.getProject())

		r.Post("/api/like", handlers.likeHandler.sendLike(services.LikeMessage))

		// Mutations are gated server-side, not just in the admin UI
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAdmin)

			r.Post("/api/projects", handlers.projectHandler.createProject())
			r.Put("/api/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/api/projects/{projectID}", handlers.projectHandler.deleteProject())
		})
	})
}
