package interactions

import "errors"

var (
	// ErrPersistenceFailed indicates the store reported a failed
	// counter write; the in-memory mutation has been rolled back
	ErrPersistenceFailed = errors.New("failed to persist counter")

	// ErrShareUnavailable indicates every share strategy was exhausted
	ErrShareUnavailable = errors.New("no share method available")
)
