package registry

import (
	"fmt"
	"sync"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("berita", "collection-berita")
	if err != nil {
		t.Fatalf("Register gagal: %v", err)
	}
	if !isNew {
		t.Error("pendaftaran pertama harus isNew = true")
	}

	item, exists := r.Get("berita")
	if !exists {
		t.Fatal("item yang terdaftar tidak ditemukan")
	}
	if item != "collection-berita" {
		t.Errorf("item = %q, harusnya %q", item, "collection-berita")
	}
}

func TestRegister_Overwrite(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("x", 1)

	isNew, err := r.Register("x", 2)
	if err != nil {
		t.Fatalf("Register gagal: %v", err)
	}
	if isNew {
		t.Error("pendaftaran ulang harus isNew = false")
	}

	item, _ := r.Get("x")
	if item != 2 {
		t.Errorf("item setelah timpa = %d, harusnya 2", item)
	}
}

func TestRegister_EmptyName(t *testing.T) {
	r := NewRegistry[string]()
	if _, err := r.Register("", "nilai"); err == nil {
		t.Error("Register dengan nama kosong harus gagal")
	}
}

func TestGet_Missing(t *testing.T) {
	r := NewRegistry[string]()
	if _, exists := r.Get("tidak-ada"); exists {
		t.Error("Get item yang tidak ada harus exists = false")
	}
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	created := 0

	item, err := r.GetOrCreate("a", func() (int, error) {
		created++
		return 42, nil
	})
	if err != nil {
		t.Fatalf("GetOrCreate gagal: %v", err)
	}
	if item != 42 {
		t.Errorf("item = %d, harusnya 42", item)
	}

	// Panggilan kedua tidak boleh memanggil creator lagi
	item, err = r.GetOrCreate("a", func() (int, error) {
		created++
		return 99, nil
	})
	if err != nil {
		t.Fatalf("GetOrCreate kedua gagal: %v", err)
	}
	if item != 42 {
		t.Errorf("item kedua = %d, harusnya tetap 42", item)
	}
	if created != 1 {
		t.Errorf("creator terpanggil %d kali, harusnya 1", created)
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "x")

	cleaned := false
	deleted, err := r.Clear("a", func(string) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear gagal: %v", err)
	}
	if !deleted {
		t.Error("Clear harus deleted = true")
	}
	if !cleaned {
		t.Error("cleanup tidak terpanggil")
	}
	if _, exists := r.Get("a"); exists {
		t.Error("item masih ada setelah Clear")
	}
}

func TestConcurrentRegisterGet(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("item-%d", n)
			r.Register(name, n)
			if item, exists := r.Get(name); !exists || item != n {
				t.Errorf("item %s tidak konsisten", name)
			}
		}(i)
	}
	wg.Wait()
}
