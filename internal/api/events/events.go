// Package events menyediakan mekanisme event terpusat saat data berubah lewat CRUD.
// Service CRUD tidak perlu meng-override tiap method — BaseServiceMongoImpl otomatis
// memancarkan event. Logika reaksi (umpan realtime SSE, invalidasi cache, ...)
// mendaftar lewat OnDataChanged.
package events

import (
	"context"
	"reflect"
	"sync"
)

// OpInsert, OpUpdate, OpUpsert, OpDelete adalah jenis operasi CRUD.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// DataChangeEvent menggambarkan satu kejadian perubahan data.
// Document adalah dokumen setelah perubahan (nil jika delete).
type DataChangeEvent struct {
	CollectionName string
	Operation      string
	Document       interface{}
}

// DataChangeHandler menangani kejadian perubahan data.
type DataChangeHandler func(ctx context.Context, e DataChangeEvent)

var (
	handlers   []DataChangeHandler
	handlersMu sync.RWMutex
)

// OnDataChanged mendaftarkan handler. Panggil saat init (misalnya dari package realtime).
func OnDataChanged(h DataChangeHandler) {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers = append(handlers, h)
}

// EmitDataChanged memancarkan event. Dipanggil dari BaseServiceMongoImpl setelah
// tiap CRUD berhasil. Setiap handler berjalan di goroutine sendiri; panic
// di-recover agar tidak mengganggu handler lain.
func EmitDataChanged(ctx context.Context, e DataChangeEvent) {
	handlersMu.RLock()
	list := make([]DataChangeHandler, len(handlers))
	copy(list, handlers)
	handlersMu.RUnlock()

	for _, h := range list {
		go func(fn DataChangeHandler) {
			defer func() {
				if r := recover(); r != nil {
					// Logger bisa saja belum ter-init saat event berjalan lebih awal
					_ = r
				}
			}()
			fn(ctx, e)
		}(h)
	}
}

// GetStringField mengambil nilai string sebuah field dari dokumen (reflection).
// Dipakai handler realtime untuk membaca field penentu urutan/identitas.
func GetStringField(doc interface{}, fieldName string) string {
	if doc == nil {
		return ""
	}
	val := reflect.ValueOf(doc)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return ""
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ""
	}
	f := val.FieldByName(fieldName)
	if !f.IsValid() || !f.CanInterface() || f.Kind() != reflect.String {
		return ""
	}
	return f.String()
}

// GetInt64Field mengambil nilai int64 sebuah field dari dokumen (reflection).
// Dipakai untuk membaca createdAt/updatedAt saat mengurutkan umpan realtime.
func GetInt64Field(doc interface{}, fieldName string) int64 {
	if doc == nil {
		return 0
	}
	val := reflect.ValueOf(doc)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return 0
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return 0
	}
	f := val.FieldByName(fieldName)
	if !f.IsValid() || !f.CanInterface() {
		return 0
	}
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return f.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(f.Uint())
	default:
		return 0
	}
}
