package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenKV fails every operation, standing in for a corrupt or
// unavailable backend
type brokenKV struct{}

func (brokenKV) Get(string) (string, bool, error) {
	return "", false, errors.New("backend down")
}
func (brokenKV) Set(string, string) error { return errors.New("backend down") }
func (brokenKV) Prefix(string) (map[string]string, error) {
	return nil, errors.New("backend down")
}
func (brokenKV) DeletePrefix(string) error { return errors.New("backend down") }
func (brokenKV) Close() error              { return nil }

func TestStore_CounterRoundTrip(t *testing.T) {
	s := New(NewMemoryKV(), nil)

	assert.Equal(t, 0, s.GetCounter(Likes, "42"), "absent counter defaults to 0")

	require.True(t, s.SetCounter(Likes, "42", 7))
	assert.Equal(t, 7, s.GetCounter(Likes, "42"))

	// Counters are namespaced per kind
	assert.Equal(t, 0, s.GetCounter(Dislikes, "42"))
}

func TestStore_CounterNeverNegative(t *testing.T) {
	s := New(NewMemoryKV(), nil)

	require.True(t, s.SetCounter(Dislikes, "1", -5))
	assert.Equal(t, 0, s.GetCounter(Dislikes, "1"))
}

func TestStore_MalformedCounterDefaultsToZero(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set("photofeed:likes:9", "not a number"))
	require.NoError(t, kv.Set("photofeed:likes:10", "12abc"))

	s := New(kv, nil)
	assert.Equal(t, 0, s.GetCounter(Likes, "9"))
	assert.Equal(t, 0, s.GetCounter(Likes, "10"), "trailing garbage is malformed, not a partial parse")
}

func TestStore_BrokenBackendDegradesToDefaults(t *testing.T) {
	s := New(brokenKV{}, nil)

	// Nothing raises; reads default, writes report false
	assert.Equal(t, 0, s.GetCounter(Likes, "1"))
	assert.False(t, s.SetCounter(Likes, "1", 3))
	assert.Equal(t, DefaultPreferences(), s.Preferences())
	assert.False(t, s.SetPreferences(DefaultPreferences()))
	assert.Equal(t, "light", s.Theme())
	assert.False(t, s.ClearAll())
	assert.Equal(t, StorageStats{}, s.Stats())
}

func TestStore_Preferences(t *testing.T) {
	s := New(NewMemoryKV(), nil)

	prefs := s.Preferences()
	assert.Equal(t, "custom", prefs.APIMode)
	assert.True(t, prefs.AutoLoadImages)
	assert.False(t, prefs.EnableNotifications)

	prefs.EnableNotifications = true
	require.True(t, s.SetPreferences(prefs))
	assert.True(t, s.Preferences().EnableNotifications)
}

func TestStore_MalformedPreferencesUseDefaults(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set("photofeed:preferences", "{broken json"))

	s := New(kv, nil)
	assert.Equal(t, DefaultPreferences(), s.Preferences())
}

func TestStore_Theme(t *testing.T) {
	s := New(NewMemoryKV(), nil)

	assert.Equal(t, "light", s.Theme())
	require.True(t, s.SetTheme("dark"))
	assert.Equal(t, "dark", s.Theme())
}

func TestStore_ClearAllScopedToNamespace(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set("other-app:counter", "99"))

	s := New(kv, nil)
	require.True(t, s.SetCounter(Likes, "1", 4))
	require.True(t, s.ClearAll())

	assert.Equal(t, 0, s.GetCounter(Likes, "1"))
	v, ok, err := kv.Get("other-app:counter")
	require.NoError(t, err)
	assert.True(t, ok, "keys outside the namespace survive ClearAll")
	assert.Equal(t, "99", v)
}

func TestStore_Stats(t *testing.T) {
	s := New(NewMemoryKV(), nil)
	assert.Equal(t, StorageStats{}, s.Stats())

	require.True(t, s.SetCounter(Likes, "1", 10))
	require.True(t, s.SetCounter(Dislikes, "1", 2))

	stats := s.Stats()
	assert.Equal(t, 2, stats.Keys)
	assert.Greater(t, stats.Bytes, 0)
}

func TestSQLiteKV_RoundTrip(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("photofeed:likes:1", "5"))
	require.NoError(t, kv.Set("photofeed:likes:1", "6")) // upsert
	require.NoError(t, kv.Set("photofeed:dislikes:1", "2"))
	require.NoError(t, kv.Set("unrelated", "x"))

	v, ok, err := kv.Get("photofeed:likes:1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "6", v)

	items, err := kv.Prefix("photofeed:")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, kv.DeletePrefix("photofeed:"))
	items, err = kv.Prefix("photofeed:")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, ok, err = kv.Get("unrelated")
	require.NoError(t, err)
	assert.True(t, ok)
}
