package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	c := New()

	_, ok := c.Get("missing", time.Minute)
	assert.False(t, ok)

	c.Set("k", []string{"All", "Pulses"})
	v, ok := c.Get("k", time.Minute)
	require.True(t, ok)
	assert.Equal(t, []string{"All", "Pulses"}, v)
}

func TestExpiry(t *testing.T) {
	c := New()
	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("k", 42)

	current = current.Add(4 * time.Minute)
	_, ok := c.Get("k", 5*time.Minute)
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = c.Get("k", 5*time.Minute)
	assert.False(t, ok)

	// expired entry was dropped, not just hidden
	c.mu.Lock()
	_, present := c.entries["k"]
	c.mu.Unlock()
	assert.False(t, present)
}

func TestInvalidateAll(t *testing.T) {
	c := New()
	c.Set("a", 1)
	c.Set("b", 2)

	c.InvalidateAll()

	_, ok := c.Get("a", time.Minute)
	assert.False(t, ok)
	_, ok = c.Get("b", time.Minute)
	assert.False(t, ok)
}
