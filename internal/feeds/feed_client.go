package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"photofeed/internal/core/posts"
)

// FlexID accepts the feed's id field as either a JSON string or number
// and carries it as a string internally
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// RawAuthor is the untyped author shape of the external feed schema
type RawAuthor struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	UserSince string `json:"userSince"`
	Channel   string `json:"channel"`
}

// RawPhoto is the untyped record shape of the external feed schema.
// Likes and dislikes are optional and default to zero.
type RawPhoto struct {
	ID        FlexID    `json:"id"`
	Source    string    `json:"source"`
	Thumbnail string    `json:"thumbnail"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Author    RawAuthor `json:"author"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
}

type feedResponse struct {
	Photos *[]RawPhoto `json:"photos"`
}

// FeedClient fetches the structured feed source
type FeedClient struct {
	client  *http.Client
	feedURL string
}

// NewFeedClient creates a client for the structured feed endpoint.
// The http.Client should carry a bounded timeout; a timeout surfaces as
// a fetch failure.
func NewFeedClient(client *http.Client, feedURL string) *FeedClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedClient{client: client, feedURL: feedURL}
}

// Photos fetches the feed and returns its raw records.
// Non-2xx responses yield posts.ErrFetch; a payload without a photos
// array yields posts.ErrDataFormat.
func (c *FeedClient) Photos(ctx context.Context) ([]RawPhoto, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating feed request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", posts.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: feed returned status %d", posts.ErrFetch, resp.StatusCode)
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", posts.ErrDataFormat, err)
	}
	if payload.Photos == nil {
		return nil, posts.ErrDataFormat
	}

	return *payload.Photos, nil
}
