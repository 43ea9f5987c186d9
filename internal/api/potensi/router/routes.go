// Package router mendaftarkan route domain potensi: wisata, UMKM,
// kearifan lokal.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	potensihdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/potensi/handler"
	apirouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/router"
)

// Register mendaftarkan seluruh route domain potensi ke v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	wisataHandler, err := potensihdl.NewWisataHandler()
	if err != nil {
		return fmt.Errorf("create wisata handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/wisata", wisataHandler, apirouter.ReadWriteConfig)

	umkmHandler, err := potensihdl.NewUmkmHandler()
	if err != nil {
		return fmt.Errorf("create umkm handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/umkm", umkmHandler, apirouter.ReadWriteConfig)

	kearifanHandler, err := potensihdl.NewKearifanLokalHandler()
	if err != nil {
		return fmt.Errorf("create kearifan lokal handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/kearifan-lokal", kearifanHandler, apirouter.ReadWriteConfig)

	return nil
}
