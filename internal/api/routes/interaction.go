package routes

import (
	"github.com/go-chi/chi/v5"

	"photofeed/internal/api/handlers/interaction"
	"photofeed/internal/core/interactions"
	"photofeed/internal/core/posts"
)

// RegisterInteractionRoutes registers like/dislike/share/stats
// endpoints on the router
func RegisterInteractionRoutes(r chi.Router, repo posts.Repository, service *interactions.Service) {
	handler := interaction.NewHandler(repo, service)

	r.Post("/posts/{id}/like", handler.HandleLike)
	r.Post("/posts/{id}/dislike", handler.HandleDislike)
	r.Post("/posts/{id}/share", handler.HandleShare)
	r.Get("/stats", handler.HandleStats)
}
