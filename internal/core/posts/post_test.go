package posts

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPost() *Post {
	return &Post{
		ID:        "1",
		Source:    "https://example.com/a.png",
		Thumbnail: "https://example.com/a_thumb.png",
		Title:     "Sunset",
		Date:      "2024-01-01",
		Author:    Author{Name: "Ann", UserSince: "2019", Channel: "Nature"},
		CreatedAt: time.Now(),
	}
}

func TestAuthor_IsValid(t *testing.T) {
	assert.True(t, Author{Name: "Ann"}.IsValid())
	assert.False(t, Author{Name: ""}.IsValid())
	assert.False(t, Author{Name: "   "}.IsValid())
}

func TestAuthor_Fallbacks(t *testing.T) {
	a := Author{}
	assert.Equal(t, "Anonymous", a.DisplayName())
	assert.NotEmpty(t, a.AvatarURL())

	b := Author{Name: "Ann", Image: "https://example.com/ann.png"}
	assert.Equal(t, "Ann", b.DisplayName())
	assert.Equal(t, "https://example.com/ann.png", b.AvatarURL())
}

func TestAuthor_YearsSinceJoining(t *testing.T) {
	a := Author{UserSince: "2019"}
	assert.Equal(t, float64(time.Now().Year()-2019), a.YearsSinceJoining())

	// Malformed userSince yields NaN, not an error
	assert.True(t, math.IsNaN(Author{UserSince: "not a year"}.YearsSinceJoining()))
	assert.True(t, math.IsNaN(Author{}.YearsSinceJoining()))
}

func TestPost_IsValid(t *testing.T) {
	p := validPost()
	assert.True(t, p.IsValid())

	missingTitle := validPost()
	missingTitle.Title = ""
	assert.False(t, missingTitle.IsValid())

	badAuthor := validPost()
	badAuthor.Author.Name = ""
	assert.False(t, badAuthor.IsValid())
}

func TestPost_Engagement(t *testing.T) {
	p := validPost()
	assert.Equal(t, 0, p.TotalEngagement())
	assert.Equal(t, 0.0, p.EngagementRatio())

	p.AddLike()
	p.AddLike()
	p.AddLike()
	p.AddDislike()
	assert.Equal(t, 4, p.TotalEngagement())
	assert.Equal(t, 0.75, p.EngagementRatio())
}

func TestPost_AddLikeReturnsNewCount(t *testing.T) {
	p := validPost()
	p.Likes = 5
	assert.Equal(t, 6, p.AddLike())
	assert.Equal(t, 1, p.AddDislike())
}

func TestTimeSince_Buckets(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"one day", 1 * day, "1 day ago"},
		{"six days", 6 * day, "6 days ago"},
		{"seven days is one week", 7 * day, "1 weeks ago"},
		{"thirteen days", 13 * day, "1 weeks ago"},
		{"twenty nine days", 29 * day, "4 weeks ago"},
		{"thirty days is one month", 30 * day, "1 months ago"},
		{"ninety days", 90 * day, "3 months ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeSince(now, now.Add(-tt.elapsed)))
		})
	}
}

func TestPost_ShareableContent(t *testing.T) {
	p := validPost()
	content := p.ShareableContent()
	assert.Equal(t, "Sunset", content.Title)
	assert.Equal(t, "https://example.com/a.png", content.URL)
	assert.Contains(t, content.Text, "Sunset")
	assert.Contains(t, content.Text, "Ann")
}
