package feeds

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"photofeed/internal/core/posts"
)

// DefaultCacheTTL bounds how long a fetched feed is served from cache
const DefaultCacheTTL = 5 * time.Minute

// Synthetic author attached to randomized fetches
var randomAuthor = posts.Author{
	Name:      "Random Fox",
	Image:     "https://randomfox.ca/images/logo.png",
	UserSince: "2020",
	Channel:   "Wildlife",
}

// PostRepository implements posts.Repository over the structured feed
// source and the randomized image source, with a single time-bounded
// cache slot for the feed.
//
// Concurrent FetchAll calls during an in-flight refresh are not
// deduplicated; both hit the network and the last one wins the cache
// slot. Accepted limitation.
type PostRepository struct {
	feed   *FeedClient
	images *ImageClient
	cache  *feedCache
	logger *slog.Logger
	now    func() time.Time
}

var _ posts.Repository = (*PostRepository)(nil)

// NewPostRepository creates a repository over the given clients.
// A ttl of 0 uses DefaultCacheTTL.
func NewPostRepository(feed *FeedClient, images *ImageClient, ttl time.Duration, logger *slog.Logger) *PostRepository {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &PostRepository{
		feed:   feed,
		images: images,
		cache:  newFeedCache(ttl, logger),
		logger: logger,
		now:    time.Now,
	}
}

// FetchAll returns the feed, served from cache while fresh. A failed
// fetch is wrapped and re-raised, and never replaces the cache record.
// Returned posts are the caller's own copies; mutations never reach the
// cache or other requests.
func (r *PostRepository) FetchAll(ctx context.Context) ([]*posts.Post, error) {
	if cached, ok := r.cache.get(); ok {
		return cached, nil
	}

	raw, err := r.feed.Photos(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}

	entries := make([]*posts.Post, 0, len(raw))
	for _, photo := range raw {
		entries = append(entries, r.mapPhoto(photo))
	}

	r.cache.set(entries)
	return entries, nil
}

// mapPhoto translates one raw feed record into a domain post.
// Missing likes/dislikes default to zero via the wire types.
func (r *PostRepository) mapPhoto(photo RawPhoto) *posts.Post {
	return &posts.Post{
		ID:        string(photo.ID),
		Source:    photo.Source,
		Thumbnail: photo.Thumbnail,
		Title:     photo.Title,
		Date:      photo.Date,
		Author: posts.Author{
			Name:      photo.Author.Name,
			Image:     photo.Author.Image,
			UserSince: photo.Author.UserSince,
			Channel:   photo.Author.Channel,
		},
		Likes:     photo.Likes,
		Dislikes:  photo.Dislikes,
		CreatedAt: r.now(),
	}
}

// FetchRandom issues count independent sequential calls to the image
// source. Each failed call is skipped with a warning; the batch never
// aborts. This path never reads or writes the cache.
func (r *PostRepository) FetchRandom(ctx context.Context, count int) ([]*posts.Post, error) {
	fetchedAt := r.now()
	result := make([]*posts.Post, 0, count)

	for i := 0; i < count; i++ {
		imageURL, err := r.images.RandomImage(ctx)
		if err != nil {
			r.logger.Warn("random image fetch skipped", "index", i, "error", err)
			continue
		}

		result = append(result, &posts.Post{
			ID:        fmt.Sprintf("fox-%d-%d", fetchedAt.UnixMilli(), i),
			Source:    imageURL,
			Thumbnail: imageURL,
			Title:     fmt.Sprintf("Random photo #%d", i+1),
			Date:      fetchedAt.Format("2006-01-02"),
			Author:    randomAuthor,
			CreatedAt: fetchedAt,
		})
	}

	return result, nil
}

// FindByID returns the feed post with the given id, or ErrPostNotFound
func (r *PostRepository) FindByID(ctx context.Context, id string) (*posts.Post, error) {
	all, err := r.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, post := range all {
		if post.ID == id {
			return post, nil
		}
	}
	return nil, posts.ErrPostNotFound
}

// FindByAuthor returns feed posts whose author name contains name,
// case-insensitively
func (r *PostRepository) FindByAuthor(ctx context.Context, name string) ([]*posts.Post, error) {
	return r.filter(ctx, func(p *posts.Post) bool {
		return containsFold(p.Author.Name, name)
	})
}

// FindByChannel returns feed posts whose author channel contains name,
// case-insensitively
func (r *PostRepository) FindByChannel(ctx context.Context, name string) ([]*posts.Post, error) {
	return r.filter(ctx, func(p *posts.Post) bool {
		return containsFold(p.Author.Channel, name)
	})
}

func (r *PostRepository) filter(ctx context.Context, keep func(*posts.Post) bool) ([]*posts.Post, error) {
	all, err := r.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	var result []*posts.Post
	for _, post := range all {
		if keep(post) {
			result = append(result, post)
		}
	}
	return result, nil
}

// InvalidateCache clears the cache record unconditionally
func (r *PostRepository) InvalidateCache() {
	r.cache.invalidate()
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
