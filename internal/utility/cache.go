package utility

import (
	"sync"
	"time"
)

// Cache adalah cache in-memory sederhana dengan pembersihan berkala.
// Dipakai antara lain untuk menahan hasil hitung pesan belum dibaca.
type Cache struct {
	items    map[string]cacheItem
	mu       sync.RWMutex
	ttl      time.Duration
	cleanup  time.Duration
	stopChan chan struct{}
}

type cacheItem struct {
	value     interface{}
	expiresAt time.Time
}

// NewCache membuat instance Cache baru dan menjalankan loop pembersihnya
func NewCache(ttl, cleanup time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]cacheItem),
		ttl:      ttl,
		cleanup:  cleanup,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// Set menyimpan nilai ke cache dengan masa berlaku sesuai ttl
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Get mengambil nilai dari cache. Nilai kedaluwarsa dianggap tidak ada.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, exists := c.items[key]
	if !exists || time.Now().After(item.expiresAt) {
		return nil, false
	}
	return item.value, true
}

// Delete menghapus satu entri dari cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Stop menghentikan loop pembersih
func (c *Cache) Stop() {
	close(c.stopChan)
}

// cleanupLoop membuang entri kedaluwarsa secara berkala
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, item := range c.items {
				if now.After(item.expiresAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}
