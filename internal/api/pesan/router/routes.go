// Package router mendaftarkan route domain pesan kontak.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/mirzasnowy/desa-medalsari-sub000/internal/api/middleware"
	pesanhdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/pesan/handler"
	apirouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/router"
)

// Register mendaftarkan route pesan kontak ke v1.
// Hanya pengiriman pesan yang publik; kotak masuk khusus admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	pesanHandler, err := pesanhdl.NewPesanKontakHandler()
	if err != nil {
		return fmt.Errorf("create pesan kontak handler: %w", err)
	}

	v1.Post("/pesan/kirim", pesanHandler.HandleKirim)

	adminMiddleware := middleware.AuthMiddleware(middleware.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/pesan", "GET", "/find", []fiber.Handler{adminMiddleware}, pesanHandler.Find)
	apirouter.RegisterRouteWithMiddleware(v1, "/pesan", "GET", "/find-by-id/:id", []fiber.Handler{adminMiddleware}, pesanHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(v1, "/pesan", "GET", "/find-with-pagination", []fiber.Handler{adminMiddleware}, pesanHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(v1, "/pesan", "GET", "/unread-count", []fiber.Handler{adminMiddleware}, pesanHandler.HandleUnreadCount)
	apirouter.RegisterRouteWithMiddleware(v1, "/pesan", "POST", "/:id/read", []fiber.Handler{adminMiddleware}, pesanHandler.HandleMarkRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/pesan", "DELETE", "/delete-by-id/:id", []fiber.Handler{adminMiddleware}, pesanHandler.DeleteById)

	return nil
}
