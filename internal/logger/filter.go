package logger

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// FilterHook menyaring entry log berdasarkan:
// - Module (contoh: auth, chatbot, media)
// - Level log (trace, debug, info, warn, error, fatal)
// Map kosong atau berisi "*" berarti semua diizinkan.
type FilterHook struct {
	allowedModules  map[string]bool
	allowedLogTypes map[string]bool

	hasModuleFilter  bool
	hasLogTypeFilter bool

	mu sync.RWMutex
}

// NewFilterHook membuat filter hook dari konfigurasi
func NewFilterHook(cfg *LogConfig) *FilterHook {
	hook := &FilterHook{
		allowedModules:  make(map[string]bool),
		allowedLogTypes: make(map[string]bool),
	}

	hook.updateFilters(cfg)

	return hook
}

// updateFilters memperbarui filter dari konfigurasi
func (h *FilterHook) updateFilters(cfg *LogConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.allowedModules = parseFilter(cfg.FilterModules)
	h.hasModuleFilter = len(h.allowedModules) > 0 && !h.allowedModules["*"]

	h.allowedLogTypes = parseFilter(cfg.FilterLogTypes)
	h.hasLogTypeFilter = len(h.allowedLogTypes) > 0 && !h.allowedLogTypes["*"]
}

// parseFilter mengubah string "a,b,c" (atau "*") menjadi map lookup
func parseFilter(filterStr string) map[string]bool {
	result := make(map[string]bool)

	if filterStr == "" || filterStr == "*" {
		result["*"] = true
		return result
	}

	values := strings.Split(filterStr, ",")
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			result[strings.ToLower(v)] = true
		}
	}

	return result
}

// Levels mengembalikan level log yang ditangani hook ini
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire menandai entry yang tersaring dengan field "_filtered" = true;
// AsyncHook akan melewatkan entry bertanda itu.
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.hasLogTypeFilter {
		levelStr := strings.ToLower(entry.Level.String())
		if !h.allowedLogTypes[levelStr] {
			entry.Data["_filtered"] = true
			return nil
		}
	}

	if h.hasModuleFilter {
		// Entry tanpa field module tetap diloloskan
		if module, ok := entry.Data["module"].(string); ok && module != "" {
			if !h.allowedModules[strings.ToLower(module)] {
				entry.Data["_filtered"] = true
				return nil
			}
		}
	}

	return nil
}
