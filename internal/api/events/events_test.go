package events

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestEmitDataChanged_ReachesHandler(t *testing.T) {
	var mu sync.Mutex
	var received []DataChangeEvent
	done := make(chan struct{}, 1)

	OnDataChanged(func(_ context.Context, e DataChangeEvent) {
		mu.Lock()
		received = append(received, e)
		mu.Unlock()
		done <- struct{}{}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "berita",
		Operation:      OpInsert,
		Document:       map[string]string{"judul": "Uji"},
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler tidak terpanggil dalam 1 detik")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 1 {
		t.Fatalf("jumlah event diterima = %d, harusnya 1", len(received))
	}
	if received[0].CollectionName != "berita" || received[0].Operation != OpInsert {
		t.Errorf("event diterima tidak sesuai: %+v", received[0])
	}
}

func TestEmitDataChanged_PanicHandlerDoesNotBlockOthers(t *testing.T) {
	done := make(chan struct{}, 1)

	OnDataChanged(func(_ context.Context, _ DataChangeEvent) {
		panic("handler rusak")
	})
	OnDataChanged(func(_ context.Context, _ DataChangeEvent) {
		done <- struct{}{}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{CollectionName: "galeri", Operation: OpDelete})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler lain tidak terpanggil setelah ada handler yang panic")
	}
}

type contohDoc struct {
	Nama      string
	CreatedAt int64
	Posisi    int
}

func TestGetStringField(t *testing.T) {
	doc := contohDoc{Nama: "Kepala Desa"}
	if got := GetStringField(doc, "Nama"); got != "Kepala Desa" {
		t.Errorf("GetStringField = %q", got)
	}
	if got := GetStringField(&doc, "Nama"); got != "Kepala Desa" {
		t.Errorf("GetStringField lewat pointer = %q", got)
	}
	if got := GetStringField(doc, "TidakAda"); got != "" {
		t.Errorf("field tak dikenal harus kosong, dapat %q", got)
	}
	if got := GetStringField(nil, "Nama"); got != "" {
		t.Errorf("dokumen nil harus kosong, dapat %q", got)
	}
}

func TestGetInt64Field(t *testing.T) {
	doc := contohDoc{CreatedAt: 1756684800000, Posisi: 3}
	if got := GetInt64Field(doc, "CreatedAt"); got != 1756684800000 {
		t.Errorf("GetInt64Field(CreatedAt) = %d", got)
	}
	if got := GetInt64Field(doc, "Posisi"); got != 3 {
		t.Errorf("GetInt64Field(Posisi) = %d", got)
	}
	if got := GetInt64Field(doc, "Nama"); got != 0 {
		t.Errorf("field string harus 0, dapat %d", got)
	}
}
