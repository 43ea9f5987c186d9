// Package potensihdl memuat handler HTTP domain potensi.
package potensihdl

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	potensidto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/potensi/dto"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/potensi/models"
	potensisvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/potensi/service"
)

// WisataHandler menangani request CRUD destinasi wisata
type WisataHandler struct {
	*basehdl.BaseHandler[models.Wisata, potensidto.WisataCreateInput, potensidto.WisataUpdateInput]
	WisataService *potensisvc.WisataService
}

// NewWisataHandler membuat WisataHandler baru
func NewWisataHandler() (*WisataHandler, error) {
	service, err := potensisvc.NewWisataService()
	if err != nil {
		return nil, fmt.Errorf("failed to create wisata service: %v", err)
	}
	hdl := &WisataHandler{
		WisataService: service,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Wisata, potensidto.WisataCreateInput, potensidto.WisataUpdateInput](service.BaseServiceMongoImpl)
	// Destinasi dengan rating tertinggi tampil lebih dulu
	hdl.SetDefaultSort(bson.D{{Key: "rating", Value: -1}, {Key: "nama", Value: 1}})
	return hdl, nil
}

// UmkmHandler menangani request CRUD UMKM
type UmkmHandler struct {
	*basehdl.BaseHandler[models.Umkm, potensidto.UmkmCreateInput, potensidto.UmkmUpdateInput]
	UmkmService *potensisvc.UmkmService
}

// NewUmkmHandler membuat UmkmHandler baru
func NewUmkmHandler() (*UmkmHandler, error) {
	service, err := potensisvc.NewUmkmService()
	if err != nil {
		return nil, fmt.Errorf("failed to create umkm service: %v", err)
	}
	hdl := &UmkmHandler{
		UmkmService: service,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Umkm, potensidto.UmkmCreateInput, potensidto.UmkmUpdateInput](service.BaseServiceMongoImpl)
	hdl.SetDefaultSort(bson.D{{Key: "nama", Value: 1}})
	return hdl, nil
}

// KearifanLokalHandler menangani request CRUD kearifan lokal
type KearifanLokalHandler struct {
	*basehdl.BaseHandler[models.KearifanLokal, potensidto.KearifanLokalCreateInput, potensidto.KearifanLokalUpdateInput]
	KearifanLokalService *potensisvc.KearifanLokalService
}

// NewKearifanLokalHandler membuat KearifanLokalHandler baru
func NewKearifanLokalHandler() (*KearifanLokalHandler, error) {
	service, err := potensisvc.NewKearifanLokalService()
	if err != nil {
		return nil, fmt.Errorf("failed to create kearifan lokal service: %v", err)
	}
	hdl := &KearifanLokalHandler{
		KearifanLokalService: service,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.KearifanLokal, potensidto.KearifanLokalCreateInput, potensidto.KearifanLokalUpdateInput](service.BaseServiceMongoImpl)
	hdl.SetDefaultSort(bson.D{{Key: "nama", Value: 1}})
	return hdl, nil
}
