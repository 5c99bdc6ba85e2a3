package feed

import (
	"net/http"
	"strconv"

	"photofeed/internal/api/handlers"
)

const (
	defaultRandomCount = 3
	maxRandomCount     = 10
)

// HandleGetRandom returns synthetic posts from the randomized image
// source. This path never touches the feed cache.
// GET /posts/random?count=n
func (h *Handler) HandleGetRandom(w http.ResponseWriter, r *http.Request) {
	count := defaultRandomCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "count must be a positive integer")
			return
		}
		count = n
	}
	if count > maxRandomCount {
		count = maxRandomCount
	}

	result, err := h.repo.FetchRandom(r.Context(), count)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"posts": result,
	})
}
