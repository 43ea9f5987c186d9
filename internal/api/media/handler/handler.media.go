// Package mediahdl memuat handler HTTP unggahan gambar.
package mediahdl

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	mediasvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/media/service"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/utility"
)

// Jenis konten gambar yang diterima endpoint unggah
var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

// MediaHandler menangani unggahan gambar dan buku besarnya
type MediaHandler struct {
	MediaService *mediasvc.MediaService
}

// NewMediaHandler membuat MediaHandler baru
func NewMediaHandler() (*MediaHandler, error) {
	service, err := mediasvc.NewMediaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create media service: %v", err)
	}
	return &MediaHandler{MediaService: service}, nil
}

// HandleUpload menerima satu berkas multipart bernama `image`,
// memvalidasi ukuran dan jenisnya, lalu meneruskannya ke layanan hosting.
// Field form opsional refCollection dan refId langsung menandai rujukan.
func (h *MediaHandler) HandleUpload(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Berkas `image` wajib disertakan", common.StatusBadRequest, err))
			return nil
		}

		maxBytes := int64(global.MongoDB_ServerConfig.ImageMaxSizeMB) * 1024 * 1024
		if fileHeader.Size > maxBytes {
			basehdl.HandleResponse(c, nil, common.ErrUploadTooLarge)
			return nil
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if !utility.Contains(allowedImageTypes, strings.ToLower(contentType)) {
			basehdl.HandleResponse(c, nil, common.ErrUploadBadType)
			return nil
		}

		file, err := fileHeader.Open()
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeMediaUpload, "Berkas tidak bisa dibaca", common.StatusBadRequest, err))
			return nil
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeMediaUpload, "Berkas tidak bisa dibaca", common.StatusBadRequest, err))
			return nil
		}

		upload, err := h.MediaService.Upload(c.Context(), fileHeader.Filename, data)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		refCollection := c.FormValue("refCollection")
		refID := c.FormValue("refId")
		if refCollection != "" && refID != "" {
			uploadID := upload.ID
			upload, err = h.MediaService.AttachRef(c.Context(), uploadID, refCollection, refID)
			if err != nil {
				// Dokumen rujukan gagal ditandai: batalkan unggahan
				// supaya tidak ada gambar menggantung di layanan hosting
				if compErr := h.MediaService.Compensate(c.Context(), uploadID); compErr != nil {
					basehdl.HandleResponse(c, nil, compErr)
					return nil
				}
				basehdl.HandleResponse(c, nil, err)
				return nil
			}
		}

		basehdl.HandleResponse(c, upload, nil)
		return nil
	})
}

// HandleCompensate membatalkan sebuah unggahan: gambar dihapus dari
// layanan hosting dan baris buku besar ditandai terkompensasi.
// Dipanggil admin bila penulisan dokumen setelah unggah gagal.
func (h *MediaHandler) HandleCompensate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := utility.String2ObjectID(c.Params("id"))
		if id.IsZero() {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID tidak valid", common.StatusBadRequest, nil))
			return nil
		}
		err := h.MediaService.Compensate(c.Context(), id)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}
