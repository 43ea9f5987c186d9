// Package router mendaftarkan route domain desa: perangkat desa dan
// statistik penduduk.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	desahdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/handler"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/api/middleware"
	apirouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/router"
)

// Register mendaftarkan seluruh route domain desa ke v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	perangkatHandler, err := desahdl.NewPerangkatDesaHandler()
	if err != nil {
		return fmt.Errorf("create perangkat desa handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/perangkat-desa", perangkatHandler, apirouter.ReadWriteConfig)

	statistikHandler, err := desahdl.NewStatistikPendudukHandler()
	if err != nil {
		return fmt.Errorf("create statistik penduduk handler: %w", err)
	}
	// Dokumen tunggal: baca publik, tulis hanya admin
	v1.Get("/statistik-penduduk", statistikHandler.HandleGet)
	adminMiddleware := middleware.AuthMiddleware(middleware.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/statistik-penduduk", "PUT", "/", []fiber.Handler{adminMiddleware}, statistikHandler.HandleUpsert)

	return nil
}
