// Package registry menyediakan implementasi registry pattern dengan generic type.
// Package ini mengelola instance singleton di aplikasi secara thread-safe.
// Generic type membuatnya bisa dipakai ulang untuk berbagai jenis objek.
package registry

import (
	"fmt"
	"sync"

	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
)

// Registry adalah implementasi registry pattern generic yang thread-safe.
// Type parameter T menentukan jenis objek yang dikelola.
// Thread-safety dijamin lewat sync.RWMutex.
//
// Example:
//
//	// Registry untuk tipe string
//	strRegistry := NewRegistry[string]()
//
//	// Daftarkan sebuah item
//	strRegistry.Register("kunci", "nilai")
//
//	// Ambil item
//	if value, exists := strRegistry.Get("kunci"); exists {
//	    fmt.Println(value)
//	}
type Registry[T any] struct {
	items map[string]T // Map penyimpan item per key
	mu    sync.RWMutex // Mutex penjamin thread-safety
}

// NewRegistry membuat dan mengembalikan registry baru.
// Generic type T menentukan jenis item yang akan dikelola.
//
// Mengembalikan:
//   - *Registry[T]: Instance registry baru yang sudah terinisialisasi
//
// Example:
//
//	registry := NewRegistry[int]()
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// ====================================
// METODE-METODE REGISTRY
// ====================================

// Register mendaftarkan item baru ke registry.
// Jika item dengan nama yang sama sudah ada, nilainya ditimpa.
//
// Parameter:
//   - name: Identitas unik item
//   - item: Item yang didaftarkan
//
// Mengembalikan:
//   - isNew: true jika item baru, false jika menimpa item lama
//   - err: Error jika name kosong
//
// Thread-safety: aman untuk pemakaian konkuren
//
// Example:
//
//	isNew, err := registry.Register("berita", collection)
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get mengambil item berdasarkan nama.
// Mengembalikan item dan boolean penanda keberadaannya.
//
// Parameter:
//   - name: Nama item yang dicari
//
// Mengembalikan:
//   - item: Item jika ditemukan, zero value T jika tidak
//   - exists: true jika item ada
//
// Thread-safety: aman untuk pemakaian konkuren
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate mengambil item berdasarkan nama; jika belum ada, item dibuat
// lewat fungsi creator.
//
// Parameter:
//   - name: Nama item
//   - creator: Fungsi pembuat item baru
//
// Mengembalikan:
//   - item: Item (yang lama atau yang baru dibuat)
//   - err: Error jika pembuatan gagal
//
// Thread-safety: aman untuk pemakaian konkuren
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existingItem, exists := r.items[name]; exists {
		return existingItem, nil
	}

	newItem, err := creator()
	if err != nil {
		return item, fmt.Errorf("failed to create item: %w", err)
	}

	r.items[name] = newItem
	return newItem, nil
}

// Update memperbarui item secara thread-safe.
//
// Parameter:
//   - name: Nama item
//   - updater: Fungsi pembaru item
//
// Mengembalikan:
//   - error: Error jika item tidak ada atau pembaruan gagal
func (r *Registry[T]) Update(name string, updater func(T) (T, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[name]
	if !exists {
		return fmt.Errorf("item not found: %s: %w", name, common.ErrNotFound)
	}

	updated, err := updater(current)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	r.items[name] = updated
	return nil
}

// Clear menghapus satu item dari registry.
// Jika fungsi cleanup diberikan, ia dipanggil dulu untuk melepas sumber daya.
//
// Parameter:
//   - name: Nama item yang dihapus
//   - cleanup: Fungsi opsional pelepas sumber daya sebelum penghapusan
//
// Mengembalikan:
//   - deleted: true jika item terhapus, false jika item tidak ada
//   - err: Error jika cleanup gagal
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("failed to cleanup item %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}

// ClearAll menghapus seluruh item di registry.
// Jika fungsi cleanup diberikan, ia dipanggil untuk setiap item.
//
// Parameter:
//   - cleanup: Fungsi opsional pelepas sumber daya
//
// Mengembalikan:
//   - count: Jumlah item yang terhapus
//   - err: Error jika ada cleanup yang gagal
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	if count == 0 {
		return 0, nil
	}

	if cleanup != nil {
		var errs []error
		for name, item := range r.items {
			if err := cleanup(item); err != nil {
				errs = append(errs, fmt.Errorf("failed to cleanup %s: %w", name, err))
			}
		}
		if len(errs) > 0 {
			return 0, fmt.Errorf("cleanup errors occurred: %v", errs)
		}
	}

	r.items = make(map[string]T)
	return count, nil
}
