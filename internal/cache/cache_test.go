package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := New(true)

	etag := c.Set("grid:q", []byte(`{"suggestions":[]}`), time.Minute)
	require.NotEmpty(t, etag)

	data, gotETag, ok := c.Get("grid:q")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"suggestions":[]}`), data)
	assert.Equal(t, etag, gotETag)

	_, _, ok = c.Get("grid:other")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c := New(true)

	c.Set("k", []byte("v"), -time.Second)
	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCacheDisabled(t *testing.T) {
	c := New(false)

	etag := c.Set("k", []byte("v"), time.Minute)
	// A disabled cache still hands back an ETag so handlers can do
	// conditional responses without caring whether caching is on.
	assert.NotEmpty(t, etag)

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestComputeETag(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	b := ComputeETag([]byte("payload"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, ComputeETag([]byte("other")))
	assert.Contains(t, a, `W/"`)
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("payload"))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.False(t, CheckETagMatch("", etag))
	assert.False(t, CheckETagMatch(`W/"nope"`, etag))
}

func TestCacheSnapshot(t *testing.T) {
	c := New(true)
	c.Set("live", []byte("v"), time.Minute)
	c.Set("dead", []byte("v"), -time.Second)

	s := c.Snapshot()
	assert.True(t, s.Enabled)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, 1, s.Expired)
}
