package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuditAction merekam satu aksi audit
type AuditAction struct {
	Action       string                 `json:"action"`        // Nama aksi (contoh: "berita_create", "pesan_read")
	UserID       string                 `json:"user_id"`       // ID pengguna pelaku
	ResourceID   string                 `json:"resource_id"`   // ID sumber daya yang terdampak
	ResourceType string                 `json:"resource_type"` // Jenis sumber daya (contoh: "berita", "pesan_kontak")
	IP           string                 `json:"ip"`            // Alamat IP
	UserAgent    string                 `json:"user_agent"`    // User agent
	Details      map[string]interface{} `json:"details"`       // Detail tambahan
	Timestamp    time.Time              `json:"timestamp"`     // Waktu kejadian
}

// LogAction mencatat satu aksi audit
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	auditLogger := GetAuditLogger()

	audit := AuditAction{
		Action:    action,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Details:   details,
		Timestamp: time.Now(),
	}

	if audit.Details == nil {
		audit.Details = make(map[string]interface{})
	}

	// Ambil user ID dari context jika ada
	if userID := c.Locals("user_id"); userID != nil {
		if uid, ok := userID.(string); ok {
			audit.UserID = uid
		}
	}

	if requestID := c.Get("X-Request-ID"); requestID != "" {
		audit.Details["request_id"] = requestID
	}

	auditLogger.WithFields(logrus.Fields{
		"action":        audit.Action,
		"user_id":       audit.UserID,
		"resource_id":   audit.ResourceID,
		"resource_type": audit.ResourceType,
		"ip":            audit.IP,
		"user_agent":    audit.UserAgent,
		"details":       audit.Details,
		"timestamp":     audit.Timestamp,
	}).Info("Audit log")
}

// LogCRUD mencatat operasi CRUD
func LogCRUD(operation string, resourceType string, resourceID string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["operation"] = operation
	details["resource_type"] = resourceType
	details["resource_id"] = resourceID

	LogAction("crud_"+operation, c, details)
}

// LogAuth mencatat aksi autentikasi
func LogAuth(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["auth_action"] = action

	LogAction("auth_"+action, c, details)
}
