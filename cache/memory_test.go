package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests advance time without sleeping.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time          { return c.current }
func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func newClockedMemory() (*Memory, *fakeClock) {
	clock := &fakeClock{current: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}
	return NewMemoryWithClock(clock.now), clock
}

func TestMemoryGetSet(t *testing.T) {
	store, _ := newClockedMemory()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	store.Set("key", []byte("payload"), 10*time.Second)
	value, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), value)
}

func TestMemoryExpiry(t *testing.T) {
	store, clock := newClockedMemory()
	store.Set("key", []byte("payload"), 10*time.Second)

	clock.advance(9 * time.Second)
	_, ok := store.Get("key")
	assert.True(t, ok)

	clock.advance(2 * time.Second)
	_, ok = store.Get("key")
	assert.False(t, ok)
	// The lazy read dropped the entry, not just hid it.
	assert.Equal(t, 0, store.Len())
}

func TestMemoryOverwriteResetsTTL(t *testing.T) {
	store, clock := newClockedMemory()
	store.Set("key", []byte("old"), 10*time.Second)

	clock.advance(8 * time.Second)
	store.Set("key", []byte("new"), 10*time.Second)

	clock.advance(8 * time.Second)
	value, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}

func TestMemoryPrune(t *testing.T) {
	store, clock := newClockedMemory()
	store.Set("short-1", []byte("a"), 5*time.Second)
	store.Set("short-2", []byte("b"), 5*time.Second)
	store.Set("long", []byte("c"), time.Hour)

	clock.advance(6 * time.Second)
	assert.Equal(t, 2, store.Prune())
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 0, store.Prune())

	_, ok := store.Get("long")
	assert.True(t, ok)
}

func TestMemoryDeleteAndClear(t *testing.T) {
	store, _ := newClockedMemory()
	store.Set("a", []byte("1"), time.Hour)
	store.Set("b", []byte("2"), time.Hour)

	store.Delete("a")
	_, ok := store.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())

	store.Clear()
	assert.Equal(t, 0, store.Len())
}
