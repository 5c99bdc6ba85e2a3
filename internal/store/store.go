package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
)

// Counter identifies which engagement counter a key holds
type Counter string

const (
	Likes    Counter = "likes"
	Dislikes Counter = "dislikes"
)

// Key namespace. Every key this store touches lives under keyPrefix so
// ClearAll and Stats can scope to our data alone.
const (
	keyPrefix      = "photofeed:"
	preferencesKey = keyPrefix + "preferences"
	themeKey       = keyPrefix + "theme"
	defaultTheme   = "light"
	defaultAPIMode = "custom"
)

// Preferences holds user-facing configuration persisted across restarts
type Preferences struct {
	APIMode             string `json:"apiMode"`
	AutoLoadImages      bool   `json:"autoLoadImages"`
	EnableNotifications bool   `json:"enableNotifications"`
}

// DefaultPreferences returns the preferences used when nothing is
// persisted or the persisted record is malformed
func DefaultPreferences() Preferences {
	return Preferences{
		APIMode:             defaultAPIMode,
		AutoLoadImages:      true,
		EnableNotifications: false,
	}
}

// StorageStats describes the namespaced keys currently persisted
type StorageStats struct {
	Keys  int `json:"keys"`
	Bytes int `json:"bytes"`
}

// Store is a scoped wrapper over a durable KeyValue backend.
//
// Contract: no operation ever propagates a backend fault. Reads degrade
// to defaults, writes report false. Callers that need the failure (the
// interaction service's rollback) key off the boolean.
type Store struct {
	kv     KeyValue
	logger *slog.Logger
}

// New creates a Store over the given backend
func New(kv KeyValue, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, logger: logger}
}

func counterKey(kind Counter, postID string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, kind, postID)
}

// GetCounter returns the persisted counter for a post, defaulting to 0
// on absence or any read failure
func (s *Store) GetCounter(kind Counter, postID string) int {
	value, ok, err := s.kv.Get(counterKey(kind, postID))
	if err != nil {
		s.logger.Warn("counter read failed, defaulting to 0",
			"kind", kind, "post", postID, "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		s.logger.Warn("counter value malformed, defaulting to 0",
			"kind", kind, "post", postID, "value", value)
		return 0
	}
	return n
}

// SetCounter durably writes the counter for a post, reporting whether
// the write succeeded. Failures are absorbed, never raised.
func (s *Store) SetCounter(kind Counter, postID string, value int) bool {
	if value < 0 {
		value = 0
	}
	if err := s.kv.Set(counterKey(kind, postID), fmt.Sprintf("%d", value)); err != nil {
		s.logger.Warn("counter write failed",
			"kind", kind, "post", postID, "value", value, "error", err)
		return false
	}
	return true
}

// Preferences returns the persisted preferences, or defaults when
// absent or malformed
func (s *Store) Preferences() Preferences {
	value, ok, err := s.kv.Get(preferencesKey)
	if err != nil || !ok {
		if err != nil {
			s.logger.Warn("preferences read failed, using defaults", "error", err)
		}
		return DefaultPreferences()
	}

	prefs := DefaultPreferences()
	if err := json.Unmarshal([]byte(value), &prefs); err != nil {
		s.logger.Warn("preferences malformed, using defaults", "error", err)
		return DefaultPreferences()
	}
	return prefs
}

// SetPreferences persists the preferences, reporting success
func (s *Store) SetPreferences(prefs Preferences) bool {
	data, err := json.Marshal(prefs)
	if err != nil {
		s.logger.Warn("preferences encode failed", "error", err)
		return false
	}
	if err := s.kv.Set(preferencesKey, string(data)); err != nil {
		s.logger.Warn("preferences write failed", "error", err)
		return false
	}
	return true
}

// Theme returns the persisted display theme, defaulting to "light"
func (s *Store) Theme() string {
	value, ok, err := s.kv.Get(themeKey)
	if err != nil || !ok || value == "" {
		return defaultTheme
	}
	return value
}

// SetTheme persists the display theme, reporting success
func (s *Store) SetTheme(theme string) bool {
	if err := s.kv.Set(themeKey, theme); err != nil {
		s.logger.Warn("theme write failed", "error", err)
		return false
	}
	return true
}

// ClearAll removes every key under the namespace prefix, reporting
// success
func (s *Store) ClearAll() bool {
	if err := s.kv.DeletePrefix(keyPrefix); err != nil {
		s.logger.Warn("clear failed", "error", err)
		return false
	}
	return true
}

// Stats returns the count and estimated byte size of namespaced keys.
// A backend fault yields zero stats.
func (s *Store) Stats() StorageStats {
	items, err := s.kv.Prefix(keyPrefix)
	if err != nil {
		s.logger.Warn("stats scan failed", "error", err)
		return StorageStats{}
	}

	stats := StorageStats{Keys: len(items)}
	for k, v := range items {
		stats.Bytes += len(k) + len(v)
	}
	return stats
}
