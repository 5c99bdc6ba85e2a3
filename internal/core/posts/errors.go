package posts

import "errors"

var (
	// ErrDataFormat indicates the feed payload is missing or has a
	// malformed photos array
	ErrDataFormat = errors.New("feed payload missing photos array")

	// ErrFetch indicates a non-success HTTP status or network fault
	// while reaching an external source
	ErrFetch = errors.New("fetch failed")

	// ErrPostNotFound indicates the requested post doesn't exist in the
	// current feed
	ErrPostNotFound = errors.New("post not found")
)
