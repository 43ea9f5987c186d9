// Package router mendaftarkan route umpan realtime (SSE).
package router

import (
	"github.com/gofiber/fiber/v3"

	realtimehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/realtime/handler"
	apirouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/router"
)

// Register mendaftarkan route realtime ke v1.
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	handler := realtimehdl.NewRealtimeHandler()
	v1.Get("/realtime/subscribe/:collection", handler.HandleSubscribe)
	return nil
}
