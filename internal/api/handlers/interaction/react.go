package interaction

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"photofeed/internal/api/handlers"
	"photofeed/internal/core/interactions"
	"photofeed/internal/core/posts"
)

// Handler serves like/dislike/share/stats requests
type Handler struct {
	repo    posts.Repository
	service *interactions.Service
}

// NewHandler creates an interaction handler
func NewHandler(repo posts.Repository, service *interactions.Service) *Handler {
	return &Handler{repo: repo, service: service}
}

// HandleLike increments and persists the like counter for a post.
// Persisted counters are loaded onto the post first so the increment
// applies to durable state, not the feed-reported value. A failed
// persist is reported with success=false and the rolled-back count,
// not as an HTTP error: the caller needs the count to redraw.
// POST /posts/{id}/like
func (h *Handler) HandleLike(w http.ResponseWriter, r *http.Request) {
	post, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.service.LoadInteractions(post)
	handlers.WriteJSON(w, http.StatusOK, h.service.Like(post))
}

// HandleDislike is symmetric to HandleLike over the dislike counter
// POST /posts/{id}/dislike
func (h *Handler) HandleDislike(w http.ResponseWriter, r *http.Request) {
	post, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.service.LoadInteractions(post)
	handlers.WriteJSON(w, http.StatusOK, h.service.Dislike(post))
}

// HandleShare dispatches the post through the share strategy chain
// POST /posts/{id}/share
func (h *Handler) HandleShare(w http.ResponseWriter, r *http.Request) {
	post, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, h.service.Share(r.Context(), post))
}

// HandleStats aggregates engagement across the current feed
// GET /stats
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	all, err := h.repo.FetchAll(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	for _, post := range all {
		h.service.LoadInteractions(post)
	}

	handlers.WriteJSON(w, http.StatusOK, h.service.EngagementStats(all))
}
