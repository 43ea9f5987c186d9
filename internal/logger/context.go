package logger

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ContextKey adalah tipe untuk key pada context
type ContextKey string

const (
	// RequestIDKey adalah key request ID pada context
	RequestIDKey ContextKey = "requestID"
	// UserIDKey adalah key user ID pada context
	UserIDKey ContextKey = "userID"
	// ServiceKey adalah key nama service pada context
	ServiceKey ContextKey = "service"
)

// WithContext mengembalikan entry logger yang membawa field dari context
func WithContext(ctx context.Context) *logrus.Entry {
	logger := GetAppLogger()
	entry := logger.WithContext(ctx)

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		entry = entry.WithField("request_id", requestID)
	}
	if userID := ctx.Value(UserIDKey); userID != nil {
		entry = entry.WithField("user_id", userID)
	}
	if service := ctx.Value(ServiceKey); service != nil {
		entry = entry.WithField("service", service)
	}

	return entry
}

// WithRequest mengembalikan entry logger dengan konteks request Fiber
func WithRequest(c fiber.Ctx) *logrus.Entry {
	logger := GetAppLogger()
	entry := logger.WithContext(context.Background())

	// Middleware requestid biasanya menyimpan ID di Locals
	var requestID string
	if rid := c.Locals("requestid"); rid != nil {
		if ridStr, ok := rid.(string); ok {
			requestID = ridStr
		}
	}
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}
	if requestID == "" {
		requestID = c.GetRespHeader("X-Request-ID")
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	entry = entry.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	return entry
}

// WithFields mengembalikan entry logger dengan field tambahan
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields(fields))
}

// WithError mengembalikan entry logger dengan error
func WithError(err error) *logrus.Entry {
	return GetAppLogger().WithError(err)
}

// WithModule mengembalikan entry logger dengan nama modul
// Module: nama modul (contoh: "auth", "chatbot", "media", "konten")
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

// WithCollection mengembalikan entry logger dengan nama collection MongoDB
func WithCollection(collection string) *logrus.Entry {
	return GetAppLogger().WithField("collection", collection)
}
