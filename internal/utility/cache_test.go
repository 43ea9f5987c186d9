package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("unreadCount", int64(7))

	value, exists := cache.Get("unreadCount")
	require.True(t, exists, "nilai yang baru disimpan harus ditemukan")
	assert.Equal(t, int64(7), value)
}

func TestCacheGetMissing(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	_, exists := cache.Get("tidak-ada")
	assert.False(t, exists)
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(10*time.Millisecond, time.Minute)
	defer cache.Stop()

	cache.Set("sementara", "x")
	time.Sleep(30 * time.Millisecond)

	_, exists := cache.Get("sementara")
	assert.False(t, exists, "nilai kedaluwarsa harus dianggap tidak ada")
}

func TestCacheDelete(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("a", 1)
	cache.Delete("a")

	_, exists := cache.Get("a")
	assert.False(t, exists)
}
