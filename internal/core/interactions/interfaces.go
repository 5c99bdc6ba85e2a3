package interactions

import (
	"context"

	"photofeed/internal/core/posts"
	"photofeed/internal/store"
)

// CounterStore is the persistence capability the service needs.
// Reads never fail (they default to 0); writes signal failure through
// the boolean, which drives the rollback contract.
type CounterStore interface {
	GetCounter(kind store.Counter, postID string) int
	SetCounter(kind store.Counter, postID string, value int) bool
}

// ShareStrategy is one way of dispatching a share payload. Strategies
// are capability-checked and tried in registration order; each can fail
// independently without affecting the others.
type ShareStrategy interface {
	// Name identifies the strategy in share results
	Name() string

	// Available reports whether the platform offers this capability
	Available() bool

	// Share dispatches the payload
	Share(ctx context.Context, content posts.ShareContent) error
}
