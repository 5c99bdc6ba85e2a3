package feed

import (
	"errors"
	"log"
	"net/http"

	"photofeed/internal/api/handlers"
	"photofeed/internal/core/posts"
)

// handleServiceError converts repository errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case errors.Is(err, posts.ErrDataFormat):
		handlers.WriteError(w, http.StatusBadGateway, "UpstreamFormat", "Feed source returned a malformed payload")
	case errors.Is(err, posts.ErrFetch):
		handlers.WriteError(w, http.StatusBadGateway, "UpstreamUnavailable", "Feed source is unavailable")
	default:
		log.Printf("Feed handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
