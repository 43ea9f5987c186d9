// Package realtimesvc memuat hub pelanggan umpan realtime.
// Hub menerima DataChangeEvent dari layer service lewat package events
// dan meneruskannya ke seluruh pelanggan SSE collection terkait.
package realtimesvc

import (
	"context"
	"sync"

	"github.com/mirzasnowy/desa-medalsari-sub000/internal/api/events"
)

// subscriberBuffer adalah kapasitas antrean event per pelanggan.
// Pelanggan yang tertinggal sejauh ini akan kehilangan event (drop),
// bukan memblokir pemancar.
const subscriberBuffer = 64

// Subscriber adalah satu koneksi SSE yang mendengarkan satu collection
type Subscriber struct {
	Collection string
	Events     chan events.DataChangeEvent
}

// Hub mengelola pelanggan umpan realtime per collection
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscriber]struct{}
}

var (
	hubInstance *Hub
	hubOnce     sync.Once
)

// GetHub mengembalikan hub global. Pada pemanggilan pertama, hub
// didaftarkan sebagai handler perubahan data.
func GetHub() *Hub {
	hubOnce.Do(func() {
		hubInstance = &Hub{
			subscribers: make(map[string]map[*Subscriber]struct{}),
		}
		events.OnDataChanged(hubInstance.dispatch)
	})
	return hubInstance
}

// Subscribe mendaftarkan satu pelanggan baru untuk sebuah collection
func (h *Hub) Subscribe(collection string) *Subscriber {
	sub := &Subscriber{
		Collection: collection,
		Events:     make(chan events.DataChangeEvent, subscriberBuffer),
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[collection] == nil {
		h.subscribers[collection] = make(map[*Subscriber]struct{})
	}
	h.subscribers[collection][sub] = struct{}{}
	return sub
}

// Unsubscribe melepas satu pelanggan dan menutup kanal event-nya
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.subscribers[sub.Collection]
	if !ok {
		return
	}
	if _, exist := subs[sub]; !exist {
		return
	}
	delete(subs, sub)
	close(sub.Events)
	if len(subs) == 0 {
		delete(h.subscribers, sub.Collection)
	}
}

// SubscriberCount mengembalikan jumlah pelanggan aktif sebuah collection
func (h *Hub) SubscriberCount(collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[collection])
}

// dispatch meneruskan satu event ke seluruh pelanggan collection terkait.
// Pelanggan dengan antrean penuh dilewati agar pemancar tidak terblokir.
func (h *Hub) dispatch(_ context.Context, e events.DataChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers[e.CollectionName] {
		select {
		case sub.Events <- e:
		default:
		}
	}
}
