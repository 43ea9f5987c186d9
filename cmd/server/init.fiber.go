package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	authrouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/auth/router"
	chatbotrouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/router"
	desarouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/router"
	kontenrouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/konten/router"
	mediarouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/media/router"
	pesanrouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/pesan/router"
	potensirouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/potensi/router"
	realtimerouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/realtime/router"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/api/router"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/logger"
)

// InitFiberApp menginisialisasi aplikasi Fiber beserta middleware-nya
func InitFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		// =========================================
		// 1. KONFIGURASI DASAR
		// =========================================
		AppName:       "Desa Medalsari API", // Nama aplikasi
		ServerHeader:  "Desa Medalsari API", // Header server pada response
		StrictRouting: true,                 // /foo dan /foo/ berbeda
		CaseSensitive: true,                 // /Foo dan /foo berbeda
		UnescapePath:  true,                 // Decode otomatis path ter-URL-encode
		Immutable:     false,

		// =========================================
		// 2. KONFIGURASI PERFORMA
		// =========================================
		BodyLimit:       10 * 1024 * 1024, // Ukuran maksimum request body (10MB)
		Concurrency:     256 * 1024,       // Jumlah goroutine maksimum
		ReadBufferSize:  4096,             // Buffer pembacaan request
		WriteBufferSize: 4096,             // Buffer penulisan response

		// =========================================
		// 3. KONFIGURASI TIMEOUT
		// =========================================
		ReadTimeout:  15 * time.Second,  // Timeout baca request
		WriteTimeout: 30 * time.Second,  // Timeout tulis response
		IdleTimeout:  120 * time.Second, // Timeout koneksi idle

		// =========================================
		// 4. PENANGANAN ERROR
		// =========================================
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				// Pemetaan status HTTP ke kode error aplikasi
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized:
					errorCode = common.ErrCodeAuthToken.Code
				case fiber.StatusForbidden:
					errorCode = common.ErrCodeAuthRole.Code
				case fiber.StatusNotFound:
					errorCode = common.ErrCodeDatabaseQuery.Code
				case fiber.StatusConflict:
					errorCode = common.ErrCodeDatabaseQuery.Code
				}
			}

			// Deteksi TLS handshake yang salah alamat (client pakai https://
			// ke server HTTP). Handshake TLS diawali byte 0x16 0x03 0x01.
			errMsg := err.Error()
			isTLSHandshake := strings.Contains(errMsg, "unsupported http request method") &&
				(strings.Contains(errMsg, "\\x16\\x03\\x01") ||
					strings.Contains(errMsg, "\x16\x03\x01") ||
					strings.Contains(errMsg, "error when reading request headers"))

			if isTLSHandshake {
				// Bukan kondisi error sebenarnya, tidak perlu dicatat di log
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"code":    common.ErrCodeValidationInput.Code,
					"message": "Server hanya melayani HTTP. Gunakan http:// alih-alih https://",
					"status":  "error",
				})
			}

			logger.WithRequest(c).WithFields(map[string]interface{}{
				"code":      code,
				"errorCode": errorCode,
				"message":   message,
			}).Error("Request error")

			// Balas JSON error dengan format seragam
			return c.Status(code).JSON(fiber.Map{
				"code":    errorCode,
				"message": message,
				"status":  "error",
			})
		},
	})

	// =========================================
	// MIDDLEWARE STACK
	// =========================================

	// 1. Request ID - penanda unik tiap request untuk tracing
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// 2. CORS - harus di awal agar preflight request tertangani lebih dulu
	corsOrigins := global.MongoDB_ServerConfig.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		// Mode development: izinkan semua origin
		allowOrigins = []string{"*"}
	} else {
		// Mode production: hanya origin tertentu
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: global.MongoDB_ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60, // Cache preflight 24 jam
	}))

	// 3. Security headers
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 4. Rate limiting - hanya bila diaktifkan dan Max > 0
	if global.MongoDB_ServerConfig.RateLimit_Enabled && global.MongoDB_ServerConfig.RateLimit_Max > 0 {
		rateLimitMax := global.MongoDB_ServerConfig.RateLimit_Max
		rateLimitWindow := time.Duration(global.MongoDB_ServerConfig.RateLimit_Window) * time.Second
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimitMax,
			Expiration: rateLimitWindow,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP() // Dibatasi per IP
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"code":    common.ErrCodeBusinessOperation.Code,
					"message": "Terlalu banyak permintaan, silakan coba lagi nanti",
					"status":  "error",
				})
			},
			SkipFailedRequests:     false,
			SkipSuccessfulRequests: false,
			Next: func(c fiber.Ctx) bool {
				// Health check, preflight, dan stream SSE tidak dibatasi
				return c.Path() == "/health" ||
					c.Method() == "OPTIONS" ||
					strings.HasPrefix(c.Path(), "/api/v1/realtime/subscribe/")
			},
		}))
		log := logger.GetAppLogger()
		log.Infof("Rate limiting enabled: %d requests per %d seconds", rateLimitMax, global.MongoDB_ServerConfig.RateLimit_Window)
	} else {
		log := logger.GetAppLogger()
		log.Info("Rate limiting disabled")
	}

	// 5. Recover dari panic
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic":   e,
				"headers": c.GetReqHeaders(),
				"body":    string(c.Body()),
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"code":    fiber.StatusInternalServerError,
				"message": "Internal Server Error",
				"error":   fmt.Sprintf("%v", e),
				"time":    time.Now().Format(time.RFC3339),
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))

	// Health check sederhana untuk monitoring
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Pendaftaran route seluruh domain
	if err := router.SetupRoutes(app,
		authrouter.Register,
		desarouter.Register,
		kontenrouter.Register,
		potensirouter.Register,
		pesanrouter.Register,
		chatbotrouter.Register,
		mediarouter.Register,
		realtimerouter.Register,
	); err != nil {
		logger.GetAppLogger().Fatalf("Failed to setup routes: %v", err)
	}

	return app
}
