// Package pesanhdl memuat handler HTTP pesan kontak.
package pesanhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	pesandto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/pesan/dto"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/pesan/models"
	pesansvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/pesan/service"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/utility"
)

// PesanKontakHandler menangani formulir kontak publik dan kotak masuk admin
type PesanKontakHandler struct {
	*basehdl.BaseHandler[models.PesanKontak, pesandto.PesanKirimInput, pesandto.PesanUpdateInput]
	PesanService *pesansvc.PesanKontakService
}

// NewPesanKontakHandler membuat PesanKontakHandler baru
func NewPesanKontakHandler() (*PesanKontakHandler, error) {
	service, err := pesansvc.NewPesanKontakService()
	if err != nil {
		return nil, fmt.Errorf("failed to create pesan kontak service: %v", err)
	}
	hdl := &PesanKontakHandler{
		PesanService: service,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.PesanKontak, pesandto.PesanKirimInput, pesandto.PesanUpdateInput](service.BaseServiceMongoImpl)
	// Pesan terbaru tampil lebih dulu
	hdl.SetDefaultSort(bson.D{{Key: "createdAt", Value: -1}})
	return hdl, nil
}

// HandleKirim menerima pesan baru dari formulir kontak publik
func (h *PesanKontakHandler) HandleKirim(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input pesandto.PesanKirimInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		pesan, err := h.PesanService.Kirim(c.Context(), &input)
		h.HandleResponse(c, pesan, err)
		return nil
	})
}

// HandleUnreadCount mengembalikan jumlah pesan yang belum dibaca
func (h *PesanKontakHandler) HandleUnreadCount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		count, err := h.PesanService.UnreadCount(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, map[string]interface{}{"unreadCount": count}, nil)
		return nil
	})
}

// HandleMarkRead menandai satu pesan sebagai sudah dibaca
func (h *PesanKontakHandler) HandleMarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := utility.String2ObjectID(h.GetIDFromContext(c))
		if id.IsZero() {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID tidak valid", common.StatusBadRequest, nil))
			return nil
		}
		pesan, err := h.PesanService.MarkRead(c.Context(), id)
		h.HandleResponse(c, pesan, err)
		return nil
	})
}
