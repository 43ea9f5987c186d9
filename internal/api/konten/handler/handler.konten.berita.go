// Package kontenhdl memuat handler HTTP domain konten.
package kontenhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	kontendto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/konten/dto"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/konten/models"
	kontensvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/konten/service"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/utility"
)

// BeritaHandler menangani request CRUD berita dan penghitung dilihat
type BeritaHandler struct {
	*basehdl.BaseHandler[models.Berita, kontendto.BeritaCreateInput, kontendto.BeritaUpdateInput]
	BeritaService *kontensvc.BeritaService
}

// NewBeritaHandler membuat BeritaHandler baru
func NewBeritaHandler() (*BeritaHandler, error) {
	service, err := kontensvc.NewBeritaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create berita service: %v", err)
	}
	hdl := &BeritaHandler{
		BeritaService: service,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Berita, kontendto.BeritaCreateInput, kontendto.BeritaUpdateInput](service.BaseServiceMongoImpl)
	// Artikel terbaru tampil lebih dulu
	hdl.SetDefaultSort(bson.D{{Key: "tanggal", Value: -1}})
	return hdl, nil
}

// HandleView menaikkan penghitung dilihat sebuah artikel secara atomik
func (h *BeritaHandler) HandleView(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		idStr := h.GetIDFromContext(c)
		id := utility.String2ObjectID(idStr)
		if id.IsZero() {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID tidak valid", common.StatusBadRequest, nil))
			return nil
		}
		doc, err := h.BeritaService.IncrementById(c.Context(), id, "dilihat", 1)
		h.HandleResponse(c, doc, err)
		return nil
	})
}
