package posts

import "context"

// Repository defines the data access interface for posts.
// Implementations fetch from the structured feed source with a bounded
// cache, or from the randomized image source for synthetic posts.
type Repository interface {
	// FetchAll returns the current feed, served from cache while the
	// cache record is fresh. Fetch or parse failures are wrapped and
	// re-raised to the caller, never swallowed at this layer.
	FetchAll(ctx context.Context) ([]*Post, error)

	// FetchRandom issues count independent calls to the randomized
	// image source and wraps each success into a synthetic post.
	// Individual failures are skipped, not fatal. Never touches the cache.
	FetchRandom(ctx context.Context, count int) ([]*Post, error)

	// FindByID returns the post with the given id from the feed,
	// or ErrPostNotFound
	FindByID(ctx context.Context, id string) (*Post, error)

	// FindByAuthor returns posts whose author name contains the given
	// string, case-insensitively
	FindByAuthor(ctx context.Context, name string) ([]*Post, error)

	// FindByChannel returns posts whose author channel contains the
	// given string, case-insensitively
	FindByChannel(ctx context.Context, name string) ([]*Post, error)

	// InvalidateCache clears the cache record unconditionally
	InvalidateCache()
}
