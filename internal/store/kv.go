package store

// KeyValue is the durable key->string capability the Store wraps.
// The surrounding application picks a backend (sqlite, postgres, or
// in-memory); the Store never lets backend faults escape.
type KeyValue interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool, error)

	// Set durably writes the value for key
	Set(key, value string) error

	// Prefix returns all key/value pairs whose key starts with prefix
	Prefix(prefix string) (map[string]string, error)

	// DeletePrefix removes every key starting with prefix
	DeletePrefix(prefix string) error

	// Close releases the backend
	Close() error
}
