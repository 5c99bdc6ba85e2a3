package routes

import (
	"github.com/go-chi/chi/v5"

	"photofeed/internal/api/handlers/feed"
	"photofeed/internal/core/interactions"
	"photofeed/internal/core/posts"
)

// RegisterFeedRoutes registers feed endpoints on the router
func RegisterFeedRoutes(r chi.Router, repo posts.Repository, service *interactions.Service) {
	handler := feed.NewHandler(repo, service)

	r.Get("/posts", handler.HandleGetPosts)
	r.Get("/posts/random", handler.HandleGetRandom)
	r.Get("/posts/{id}", handler.HandleGetPost)
	r.Post("/cache/invalidate", handler.HandleInvalidateCache)
}
