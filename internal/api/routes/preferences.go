package routes

import (
	"github.com/go-chi/chi/v5"

	"photofeed/internal/api/handlers/preferences"
	"photofeed/internal/store"
)

// RegisterPreferenceRoutes registers preference and storage maintenance
// endpoints on the router
func RegisterPreferenceRoutes(r chi.Router, s *store.Store) {
	handler := preferences.NewHandler(s)

	r.Get("/preferences", handler.HandleGet)
	r.Put("/preferences", handler.HandlePut)
	r.Get("/theme", handler.HandleGetTheme)
	r.Put("/theme", handler.HandlePutTheme)
	r.Get("/storage/stats", handler.HandleStats)
	r.Delete("/storage", handler.HandleClear)
}
