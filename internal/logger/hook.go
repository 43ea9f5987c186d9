package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook menulis log secara asinkron agar tidak memblokir penanganan request.
// Entry di-buffer di channel lalu ditulis ke para writer oleh satu goroutine.
type AsyncHook struct {
	writers    []io.Writer // Daftar writer (file, stdout, ...)
	entries    chan *logrus.Entry
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	bufferSize int
}

// NewAsyncHookWithWriters membuat async hook dengan beberapa writer.
// bufferSize: kapasitas buffer entry (default 1000).
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers:    writers,
		entries:    make(chan *logrus.Entry, bufferSize),
		bufferSize: bufferSize,
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels mengembalikan level log yang ditangani hook ini
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire dipanggil untuk setiap entry baru; tidak pernah memblokir.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook sudah ditutup: tulis langsung ke semua writer sebagai fallback
		var data []byte
		var err error

		if entry.Logger.Formatter != nil {
			data, err = entry.Logger.Formatter.Format(entry)
		} else {
			line, strErr := entry.String()
			if strErr != nil {
				return strErr
			}
			data = []byte(line)
		}

		if err != nil {
			return err
		}

		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	// Non-blocking send: jika channel penuh, entry dibuang agar request
	// tidak ikut menunggu.
	select {
	case h.entries <- entry:
	default:
	}

	return nil
}

// processEntries menulis entry dari channel di goroutine terpisah.
// Ada recover agar panic di jalur logging tidak menjatuhkan server.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Tidak boleh memakai logger di sini (akan berputar);
					// tulis langsung ke stderr.
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] Logger goroutine panic recovered: %v\n", r)
					debug.PrintStack()
				}
			}()

			// FilterHook menandai entry yang tersaring lewat field "_filtered"
			if filtered, ok := entry.Data["_filtered"].(bool); ok && filtered {
				return
			}

			// Buang field penanda sebelum diformat
			filteredEntry := entry
			if _, ok := entry.Data["_filtered"]; ok {
				filteredEntry = entry.Dup()
				delete(filteredEntry.Data, "_filtered")
			}

			var data []byte
			var err error

			if filteredEntry.Logger.Formatter != nil {
				data, err = filteredEntry.Logger.Formatter.Format(filteredEntry)
			} else {
				line, strErr := filteredEntry.String()
				if strErr != nil {
					return
				}
				data = []byte(line)
			}

			if err != nil {
				return
			}

			for _, writer := range h.writers {
				if _, err = writer.Write(data); err != nil {
					continue
				}
			}
		}()
	}
}

// Close menutup hook dan menunggu seluruh entry selesai ditulis
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
