package posts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Display defaults used when the feed source leaves author fields empty
const (
	defaultAuthorName   = "Anonymous"
	defaultAuthorAvatar = "https://i.pravatar.cc/150"
)

// Author represents the creator of a post as reported by the feed source
// Immutable once constructed; fallback accessors supply display defaults
type Author struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	UserSince string `json:"userSince"`
	Channel   string `json:"channel"`
}

// IsValid reports whether the author carries the minimum data to display
func (a Author) IsValid() bool {
	return strings.TrimSpace(a.Name) != ""
}

// DisplayName returns the author name, or a placeholder when empty
func (a Author) DisplayName() string {
	if strings.TrimSpace(a.Name) == "" {
		return defaultAuthorName
	}
	return a.Name
}

// AvatarURL returns the author image URL, or a placeholder when empty
func (a Author) AvatarURL() string {
	if strings.TrimSpace(a.Image) == "" {
		return defaultAuthorAvatar
	}
	return a.Image
}

// YearsSinceJoining returns the number of years since the author joined.
// A malformed UserSince yields NaN, never an error.
func (a Author) YearsSinceJoining() float64 {
	year, err := strconv.Atoi(strings.TrimSpace(a.UserSince))
	if err != nil {
		return math.NaN()
	}
	return float64(time.Now().Year() - year)
}

// Post represents a photo post with engagement counters.
// Only Likes and Dislikes change after construction, exclusively through
// AddLike/AddDislike and the interaction service's rollback.
type Post struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Thumbnail string    `json:"thumbnail"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Author    Author    `json:"author"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
}

// ShareContent is the payload handed to the share pipeline
type ShareContent struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// IsValid reports whether the post carries all required fields
func (p *Post) IsValid() bool {
	return p.ID != "" &&
		p.Source != "" &&
		p.Title != "" &&
		p.Date != "" &&
		p.Author.IsValid() &&
		p.Likes >= 0 &&
		p.Dislikes >= 0
}

// AddLike increments the like counter and returns the new count
func (p *Post) AddLike() int {
	p.Likes++
	return p.Likes
}

// AddDislike increments the dislike counter and returns the new count
func (p *Post) AddDislike() int {
	p.Dislikes++
	return p.Dislikes
}

// TotalEngagement returns likes + dislikes
func (p *Post) TotalEngagement() int {
	return p.Likes + p.Dislikes
}

// EngagementRatio returns likes / total engagement, 0 when there is no
// engagement (never divides by zero)
func (p *Post) EngagementRatio() float64 {
	total := p.TotalEngagement()
	if total == 0 {
		return 0
	}
	return float64(p.Likes) / float64(total)
}

// TimeSincePosted buckets the elapsed time since the post date into a
// human-readable label
func (p *Post) TimeSincePosted() string {
	return timeSince(time.Now(), p.postedAt())
}

// postedAt parses the post date, falling back to construction time when
// the feed supplied an unparseable value
func (p *Post) postedAt() time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, p.Date); err == nil {
			return t
		}
	}
	return p.CreatedAt
}

// timeSince buckets elapsed days: "1 day ago", "N days ago" under a
// week, "N weeks ago" under a month, "N months ago" beyond
func timeSince(now, posted time.Time) string {
	days := int(now.Sub(posted).Hours() / 24)
	switch {
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}

// ShareableContent builds the payload for the share pipeline
func (p *Post) ShareableContent() ShareContent {
	return ShareContent{
		Title: p.Title,
		Text:  fmt.Sprintf("Check out %q by %s", p.Title, p.Author.DisplayName()),
		URL:   p.Source,
	}
}
