package interactions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"photofeed/internal/core/posts"
)

// fakeStrategy records whether it was tried
type fakeStrategy struct {
	name      string
	available bool
	err       error
	tried     bool
}

func (f *fakeStrategy) Name() string    { return f.name }
func (f *fakeStrategy) Available() bool { return f.available }
func (f *fakeStrategy) Share(ctx context.Context, content posts.ShareContent) error {
	f.tried = true
	return f.err
}

func TestShare_FirstAvailableStrategyWins(t *testing.T) {
	native := &fakeStrategy{name: "native", available: true}
	clipboard := &fakeStrategy{name: "clipboard", available: true}

	service := NewService(panickyStore{}, []ShareStrategy{native, clipboard}, nil)
	result := service.Share(context.Background(), testPost())

	assert.True(t, result.Success)
	assert.Equal(t, "native", result.Method)
	assert.True(t, native.tried)
	assert.False(t, clipboard.tried, "later strategies are not tried after a success")
}

func TestShare_UnavailableStrategySkipped(t *testing.T) {
	native := &fakeStrategy{name: "native", available: false}
	clipboard := &fakeStrategy{name: "clipboard", available: true}

	service := NewService(panickyStore{}, []ShareStrategy{native, clipboard}, nil)
	result := service.Share(context.Background(), testPost())

	assert.True(t, result.Success)
	assert.Equal(t, "clipboard", result.Method)
	assert.False(t, native.tried, "unavailable capabilities are never invoked")
}

func TestShare_FailingStrategyFallsThrough(t *testing.T) {
	native := &fakeStrategy{name: "native", available: true, err: errors.New("denied")}
	clipboard := &fakeStrategy{name: "clipboard", available: true, err: errors.New("no display")}
	fallback := &fakeStrategy{name: "file", available: true}

	service := NewService(panickyStore{}, []ShareStrategy{native, clipboard, fallback}, nil)
	result := service.Share(context.Background(), testPost())

	assert.True(t, result.Success)
	assert.Equal(t, "file", result.Method)
	assert.True(t, native.tried)
	assert.True(t, clipboard.tried)
}

func TestShare_AllStrategiesExhausted(t *testing.T) {
	native := &fakeStrategy{name: "native", available: false}
	clipboard := &fakeStrategy{name: "clipboard", available: true, err: errors.New("no display")}

	service := NewService(panickyStore{}, []ShareStrategy{native, clipboard}, nil)
	result := service.Share(context.Background(), testPost())

	assert.False(t, result.Success)
	assert.Equal(t, "none", result.Method)
}

func TestShare_NoStrategiesConfigured(t *testing.T) {
	service := NewService(panickyStore{}, nil, nil)
	result := service.Share(context.Background(), testPost())

	assert.False(t, result.Success)
	assert.Equal(t, "none", result.Method)
}
