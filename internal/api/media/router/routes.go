// Package router mendaftarkan route domain media (unggahan gambar).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	mediahdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/media/handler"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/api/middleware"
	apirouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/router"
)

// Register mendaftarkan route media ke v1. Seluruh operasi khusus admin:
// kunci API layanan hosting hanya dipegang server.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	mediaHandler, err := mediahdl.NewMediaHandler()
	if err != nil {
		return fmt.Errorf("create media handler: %w", err)
	}

	adminMiddleware := middleware.AuthMiddleware(middleware.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/media", "POST", "/upload", []fiber.Handler{adminMiddleware}, mediaHandler.HandleUpload)
	apirouter.RegisterRouteWithMiddleware(v1, "/media", "POST", "/:id/compensate", []fiber.Handler{adminMiddleware}, mediaHandler.HandleCompensate)

	return nil
}
