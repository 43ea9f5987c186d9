package kontenhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	kontendto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/konten/dto"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/konten/models"
	kontensvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/konten/service"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/utility"
)

// GaleriHandler menangani request CRUD galeri dan penghitung suka/dilihat
type GaleriHandler struct {
	*basehdl.BaseHandler[models.Galeri, kontendto.GaleriCreateInput, kontendto.GaleriUpdateInput]
	GaleriService *kontensvc.GaleriService
}

// NewGaleriHandler membuat GaleriHandler baru
func NewGaleriHandler() (*GaleriHandler, error) {
	service, err := kontensvc.NewGaleriService()
	if err != nil {
		return nil, fmt.Errorf("failed to create galeri service: %v", err)
	}
	hdl := &GaleriHandler{
		GaleriService: service,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Galeri, kontendto.GaleriCreateInput, kontendto.GaleriUpdateInput](service.BaseServiceMongoImpl)
	// Foto terbaru tampil lebih dulu
	hdl.SetDefaultSort(bson.D{{Key: "tanggal", Value: -1}})
	return hdl, nil
}

// parseID mengubah parameter :id menjadi ObjectID
func (h *GaleriHandler) parseID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := utility.String2ObjectID(h.GetIDFromContext(c))
	if id.IsZero() {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID tidak valid", common.StatusBadRequest, nil)
	}
	return id, nil
}

// HandleLike menaikkan penghitung suka sebuah foto secara atomik
func (h *GaleriHandler) HandleLike(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		doc, err := h.GaleriService.IncrementById(c.Context(), id, "suka", 1)
		h.HandleResponse(c, doc, err)
		return nil
	})
}

// HandleView menaikkan penghitung dilihat sebuah foto secara atomik
func (h *GaleriHandler) HandleView(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		doc, err := h.GaleriService.IncrementById(c.Context(), id, "dilihat", 1)
		h.HandleResponse(c, doc, err)
		return nil
	})
}
