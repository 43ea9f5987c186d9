package desahdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	desadto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/dto"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/models"
	desasvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/service"
)

// StatistikPendudukHandler menangani dokumen tunggal statistik penduduk
type StatistikPendudukHandler struct {
	*basehdl.BaseHandler[models.StatistikPenduduk, desadto.StatistikPendudukUpsertInput, desadto.StatistikPendudukUpsertInput]
	StatistikService *desasvc.StatistikPendudukService
}

// NewStatistikPendudukHandler membuat StatistikPendudukHandler baru
func NewStatistikPendudukHandler() (*StatistikPendudukHandler, error) {
	service, err := desasvc.NewStatistikPendudukService()
	if err != nil {
		return nil, fmt.Errorf("failed to create statistik penduduk service: %v", err)
	}
	hdl := &StatistikPendudukHandler{
		StatistikService: service,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.StatistikPenduduk, desadto.StatistikPendudukUpsertInput, desadto.StatistikPendudukUpsertInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleGet mengembalikan dokumen statistik penduduk.
// Bila belum pernah diisi, dikembalikan dokumen bernilai nol (HTTP 200).
func (h *StatistikPendudukHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		doc, err := h.StatistikService.GetOrZero(c.Context())
		h.HandleResponse(c, doc, err)
		return nil
	})
}

// HandleUpsert menimpa dokumen statistik penduduk dengan nilai baru
func (h *StatistikPendudukHandler) HandleUpsert(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input desadto.StatistikPendudukUpsertInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		doc, err := h.StatistikService.Replace(c.Context(), &input)
		h.HandleResponse(c, doc, err)
		return nil
	})
}
