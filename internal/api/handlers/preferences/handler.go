package preferences

import (
	"encoding/json"
	"net/http"

	"photofeed/internal/api/handlers"
	"photofeed/internal/store"
)

// Handler serves user preferences and storage maintenance
type Handler struct {
	store *store.Store
}

// NewHandler creates a preferences handler
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// HandleGet returns the persisted preferences (defaults when absent)
// GET /preferences
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, h.store.Preferences())
}

// HandlePut replaces the persisted preferences
// PUT /preferences
func (h *Handler) HandlePut(w http.ResponseWriter, r *http.Request) {
	prefs := store.DefaultPreferences()
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if !h.store.SetPreferences(prefs) {
		handlers.WriteError(w, http.StatusInternalServerError, "PersistenceFailure", "Could not save preferences")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, prefs)
}

// HandleGetTheme returns the persisted display theme
// GET /theme
func (h *Handler) HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"theme": h.store.Theme(),
	})
}

// HandlePutTheme persists the display theme
// PUT /theme
func (h *Handler) HandlePutTheme(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Theme == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "theme is required")
		return
	}

	if !h.store.SetTheme(body.Theme) {
		handlers.WriteError(w, http.StatusInternalServerError, "PersistenceFailure", "Could not save theme")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"theme": body.Theme,
	})
}

// HandleStats reports how many namespaced keys are persisted and their
// estimated size
// GET /storage/stats
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, h.store.Stats())
}

// HandleClear removes every persisted key under the namespace
// DELETE /storage
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	if !h.store.ClearAll() {
		handlers.WriteError(w, http.StatusInternalServerError, "PersistenceFailure", "Could not clear storage")
		return
	}
	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"cleared": true,
	})
}
