package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires the public surface and the gate-guarded admin
// surface onto the router.
func setupRoutes(r chi.Router, handlers *routeHandlers, gateMW gateMiddleware, startupTime time.Time) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", healthHandler(startupTime))

		// Archive endpoints
		r.Get("/posts", handlers.archiveHandler.getAllPosts())
		r.Get("/post/{postID}", handlers.archiveHandler.getPost())
		r.Get("/post/{postID}/comments", handlers.archiveHandler.getComments())
		r.Post("/post/{postID}/comment", handlers.archiveHandler.submitComment())

		// Project registry endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())

		// Contact relay
		r.Post("/contact", handlers.contactHandler.submitContact())

		// Language preference
		r.Get("/language", handlers.languageHandler.getLanguage())
		r.Post("/language/toggle", handlers.languageHandler.toggleLanguage())

		// Session endpoints: login must stay reachable while the gate is
		// closed, and logout is harmless either way.
		r.Post("/admin/login", handlers.adminHandler.login())
		r.Post("/admin/logout", handlers.adminHandler.logout())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(gateMW.requireAdmin)

		r.Post("/admin/post", handlers.adminHandler.createPost())
		r.Put("/admin/post/{postID}", handlers.adminHandler.updatePost())
		r.Delete("/admin/post/{postID}", handlers.adminHandler.deletePost())
		r.Get("/admin/post/{postID}/comments", handlers.adminHandler.getComments())
		r.Delete("/admin/comment/{commentID}", handlers.adminHandler.deleteComment())
	})
}

func healthHandler(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthHandler").Logger())

	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]any{
			"status": "ok",
			"uptime": time.Since(startupTime).String(),
		})
	}
}
