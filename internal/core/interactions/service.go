package interactions

import (
	"log/slog"

	"photofeed/internal/core/posts"
	"photofeed/internal/store"
)

// ReactionResult reports the outcome of a like or dislike. On failure
// NewCount carries the restored pre-mutation count so the caller can
// redraw consistently.
type ReactionResult struct {
	Success  bool   `json:"success"`
	NewCount int    `json:"newCount"`
	Message  string `json:"message"`
}

// InteractionState is the persisted engagement loaded onto a post
type InteractionState struct {
	Likes           int `json:"likes"`
	Dislikes        int `json:"dislikes"`
	TotalEngagement int `json:"totalEngagement"`
}

// Service applies engagement mutations to posts with a
// persist-or-rollback contract over the store.
//
// Two concurrent reactions to the same post race on the persisted
// counter and the last write wins; there is no compare-and-swap.
// Accepted limitation.
type Service struct {
	store      CounterStore
	strategies []ShareStrategy
	logger     *slog.Logger
}

// NewService creates an interaction service. Strategies are tried in
// the given order when sharing.
func NewService(store CounterStore, strategies []ShareStrategy, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, strategies: strategies, logger: logger}
}

// Like increments the post's like counter and persists it. If the
// write fails the increment is rolled back, so the in-memory count
// never diverges from what is durably recorded. Faults never propagate
// out of this method.
func (s *Service) Like(post *posts.Post) ReactionResult {
	return s.react(post, store.Likes, &post.Likes)
}

// Dislike is symmetric to Like over the dislike counter
func (s *Service) Dislike(post *posts.Post) ReactionResult {
	return s.react(post, store.Dislikes, &post.Dislikes)
}

func (s *Service) react(post *posts.Post, kind store.Counter, counter *int) (result ReactionResult) {
	before := *counter

	defer func() {
		if r := recover(); r != nil {
			*counter = before
			s.logger.Error("reaction failed unexpectedly",
				"kind", kind, "post", post.ID, "panic", r)
			result = ReactionResult{
				Success:  false,
				NewCount: before,
				Message:  "unexpected failure, count unchanged",
			}
		}
	}()

	*counter = before + 1

	if !s.store.SetCounter(kind, post.ID, *counter) {
		*counter = before
		s.logger.Warn("counter persist failed, rolled back",
			"kind", kind, "post", post.ID, "count", before)
		return ReactionResult{
			Success:  false,
			NewCount: before,
			Message:  ErrPersistenceFailed.Error(),
		}
	}

	return ReactionResult{
		Success:  true,
		NewCount: *counter,
		Message:  "saved",
	}
}

// LoadInteractions overwrites the post's counters from the store,
// establishing persisted state as the source of truth over whatever the
// feed source reported. Called once per post right after a fetch.
func (s *Service) LoadInteractions(post *posts.Post) InteractionState {
	post.Likes = s.store.GetCounter(store.Likes, post.ID)
	post.Dislikes = s.store.GetCounter(store.Dislikes, post.ID)

	return InteractionState{
		Likes:           post.Likes,
		Dislikes:        post.Dislikes,
		TotalEngagement: post.TotalEngagement(),
	}
}
