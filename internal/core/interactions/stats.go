package interactions

import "photofeed/internal/core/posts"

// EngagementStats aggregates engagement across a post collection.
// Winners are nil for an empty collection.
type EngagementStats struct {
	TotalLikes        int         `json:"totalLikes"`
	TotalDislikes     int         `json:"totalDislikes"`
	TotalEngagement   int         `json:"totalEngagement"`
	AverageEngagement float64     `json:"averageEngagement"`
	MostLikedPost     *posts.Post `json:"mostLikedPost"`
	MostEngagedPost   *posts.Post `json:"mostEngagedPost"`
}

// EngagementStats aggregates in a single pass. The "most" winners use
// strict > comparison, so the first post reaching a maximum wins ties.
func (s *Service) EngagementStats(list []*posts.Post) EngagementStats {
	var stats EngagementStats
	if len(list) == 0 {
		return stats
	}

	maxLikes, maxEngagement := -1, -1
	for _, post := range list {
		stats.TotalLikes += post.Likes
		stats.TotalDislikes += post.Dislikes
		stats.TotalEngagement += post.TotalEngagement()

		if post.Likes > maxLikes {
			maxLikes = post.Likes
			stats.MostLikedPost = post
		}
		if post.TotalEngagement() > maxEngagement {
			maxEngagement = post.TotalEngagement()
			stats.MostEngagedPost = post
		}
	}

	stats.AverageEngagement = float64(stats.TotalEngagement) / float64(len(list))
	return stats
}
