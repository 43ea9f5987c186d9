// Package desahdl memuat handler HTTP domain desa.
package desahdl

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	desadto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/dto"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/models"
	desasvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/service"
)

// PerangkatDesaHandler menangani request CRUD perangkat desa
type PerangkatDesaHandler struct {
	*basehdl.BaseHandler[models.PerangkatDesa, desadto.PerangkatDesaCreateInput, desadto.PerangkatDesaUpdateInput]
	PerangkatDesaService *desasvc.PerangkatDesaService
}

// NewPerangkatDesaHandler membuat PerangkatDesaHandler baru
func NewPerangkatDesaHandler() (*PerangkatDesaHandler, error) {
	service, err := desasvc.NewPerangkatDesaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create perangkat desa service: %v", err)
	}
	hdl := &PerangkatDesaHandler{
		PerangkatDesaService: service,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.PerangkatDesa, desadto.PerangkatDesaCreateInput, desadto.PerangkatDesaUpdateInput](service.BaseServiceMongoImpl)
	// Urutan tampil bawaan: level naik, posisi naik, nama naik
	hdl.SetDefaultSort(bson.D{
		{Key: "level", Value: 1},
		{Key: "posisi", Value: 1},
		{Key: "nama", Value: 1},
	})
	return hdl, nil
}
