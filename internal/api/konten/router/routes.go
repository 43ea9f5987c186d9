// Package router mendaftarkan route domain konten: berita dan galeri.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	kontenhdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/konten/handler"
	apirouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/router"
)

// Register mendaftarkan seluruh route domain konten ke v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	beritaHandler, err := kontenhdl.NewBeritaHandler()
	if err != nil {
		return fmt.Errorf("create berita handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/berita", beritaHandler, apirouter.ReadWriteConfig)
	// Penghitung dilihat boleh dipanggil publik (dipicu pembaca artikel)
	v1.Post("/berita/:id/view", beritaHandler.HandleView)

	galeriHandler, err := kontenhdl.NewGaleriHandler()
	if err != nil {
		return fmt.Errorf("create galeri handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/galeri", galeriHandler, apirouter.ReadWriteConfig)
	v1.Post("/galeri/:id/like", galeriHandler.HandleLike)
	v1.Post("/galeri/:id/view", galeriHandler.HandleView)

	return nil
}
