package feed

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"photofeed/internal/api/handlers"
	"photofeed/internal/core/interactions"
	"photofeed/internal/core/posts"
)

// Handler serves the post feed
type Handler struct {
	repo    posts.Repository
	service *interactions.Service
}

// NewHandler creates a feed handler
func NewHandler(repo posts.Repository, service *interactions.Service) *Handler {
	return &Handler{repo: repo, service: service}
}

// HandleGetPosts returns the feed, filtered by author or channel when
// the corresponding query parameter is set
// GET /posts?author=...&channel=...
func (h *Handler) HandleGetPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		result []*posts.Post
		err    error
	)

	switch {
	case r.URL.Query().Get("author") != "":
		result, err = h.repo.FindByAuthor(ctx, r.URL.Query().Get("author"))
	case r.URL.Query().Get("channel") != "":
		result, err = h.repo.FindByChannel(ctx, r.URL.Query().Get("channel"))
	default:
		result, err = h.repo.FetchAll(ctx)
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// Persisted interaction state is the source of truth over whatever
	// the feed reported
	for _, post := range result {
		h.service.LoadInteractions(post)
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"posts": result,
	})
}

// HandleGetPost returns a single post by id
// GET /posts/{id}
func (h *Handler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.service.LoadInteractions(post)
	handlers.WriteJSON(w, http.StatusOK, post)
}

// HandleInvalidateCache clears the feed cache so the next fetch hits
// the network
// POST /cache/invalidate
func (h *Handler) HandleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	h.repo.InvalidateCache()
	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"invalidated": true,
	})
}
