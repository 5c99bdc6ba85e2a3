package interactions

import (
	"context"

	"photofeed/internal/core/posts"
)

// ShareResult reports which strategy dispatched the payload, or
// method "none" when every strategy was exhausted
type ShareResult struct {
	Success bool   `json:"success"`
	Method  string `json:"method"`
	Message string `json:"message"`
}

// Share dispatches the post's shareable content through the first
// strategy that is available and completes without error. Strategies
// are tried in strict registration order; a failing strategy is logged
// and the next one is tried.
func (s *Service) Share(ctx context.Context, post *posts.Post) ShareResult {
	content := post.ShareableContent()

	for _, strategy := range s.strategies {
		if !strategy.Available() {
			continue
		}

		if err := strategy.Share(ctx, content); err != nil {
			s.logger.Warn("share strategy failed, trying next",
				"method", strategy.Name(), "post", post.ID, "error", err)
			continue
		}

		return ShareResult{
			Success: true,
			Method:  strategy.Name(),
			Message: "shared via " + strategy.Name(),
		}
	}

	s.logger.Warn("all share strategies exhausted", "post", post.ID)
	return ShareResult{
		Success: false,
		Method:  "none",
		Message: ErrShareUnavailable.Error(),
	}
}
