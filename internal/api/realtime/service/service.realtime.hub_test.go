package realtimesvc

import (
	"context"
	"testing"
	"time"

	"github.com/mirzasnowy/desa-medalsari-sub000/internal/api/events"
)

func newTestHub() *Hub {
	return &Hub{subscribers: make(map[string]map[*Subscriber]struct{})}
}

func TestSubscribeAndDispatch(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe("berita")
	defer hub.Unsubscribe(sub)

	if got := hub.SubscriberCount("berita"); got != 1 {
		t.Fatalf("SubscriberCount = %d, harusnya 1", got)
	}

	e := events.DataChangeEvent{CollectionName: "berita", Operation: events.OpInsert}
	hub.dispatch(context.Background(), e)

	select {
	case received := <-sub.Events:
		if received.Operation != events.OpInsert {
			t.Errorf("operasi event = %q, harusnya %q", received.Operation, events.OpInsert)
		}
	case <-time.After(time.Second):
		t.Fatal("event tidak sampai ke pelanggan")
	}
}

func TestDispatch_OnlyMatchingCollection(t *testing.T) {
	hub := newTestHub()
	subBerita := hub.Subscribe("berita")
	subGaleri := hub.Subscribe("galeri")
	defer hub.Unsubscribe(subBerita)
	defer hub.Unsubscribe(subGaleri)

	hub.dispatch(context.Background(), events.DataChangeEvent{CollectionName: "berita", Operation: events.OpUpdate})

	select {
	case <-subBerita.Events:
	case <-time.After(time.Second):
		t.Fatal("pelanggan berita tidak menerima event")
	}

	select {
	case e := <-subGaleri.Events:
		t.Errorf("pelanggan galeri menerima event milik collection lain: %+v", e)
	default:
	}
}

func TestUnsubscribe_ClosesChannel(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe("wisata")
	hub.Unsubscribe(sub)

	if got := hub.SubscriberCount("wisata"); got != 0 {
		t.Errorf("SubscriberCount setelah Unsubscribe = %d, harusnya 0", got)
	}

	if _, open := <-sub.Events; open {
		t.Error("kanal event harus tertutup setelah Unsubscribe")
	}

	// Unsubscribe kedua kali harus aman (tidak panic)
	hub.Unsubscribe(sub)
}

func TestDispatch_DropsWhenBufferFull(t *testing.T) {
	hub := newTestHub()
	sub := hub.Subscribe("umkm")
	defer hub.Unsubscribe(sub)

	// Isi antrean melebihi kapasitas; dispatch tidak boleh memblokir
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer+10; i++ {
			hub.dispatch(context.Background(), events.DataChangeEvent{CollectionName: "umkm", Operation: events.OpInsert})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch memblokir saat antrean pelanggan penuh")
	}

	if len(sub.Events) != subscriberBuffer {
		t.Errorf("panjang antrean = %d, harusnya penuh di %d", len(sub.Events), subscriberBuffer)
	}
}

func TestGetHub_Singleton(t *testing.T) {
	a := GetHub()
	b := GetHub()
	if a != b {
		t.Error("GetHub harus mengembalikan instance yang sama")
	}
}
