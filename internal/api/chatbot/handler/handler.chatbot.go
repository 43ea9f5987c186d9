// Package chatbothdl memuat handler HTTP domain chatbot.
package chatbothdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	chatbotdto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/dto"
	chatbotsvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/service"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
)

// ContentTypeDocx adalah MIME type dokumen Word hasil pengisian templat
const ContentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ChatbotHandler menangani percakapan chatbot dan unduhan surat
type ChatbotHandler struct {
	ChatbotService *chatbotsvc.ChatbotService
}

// NewChatbotHandler membuat ChatbotHandler baru
func NewChatbotHandler() (*ChatbotHandler, error) {
	service, err := chatbotsvc.NewChatbotService()
	if err != nil {
		return nil, fmt.Errorf("failed to create chatbot service: %v", err)
	}
	return &ChatbotHandler{ChatbotService: service}, nil
}

// HandleChat menjawab satu pesan pengunjung
func (h *ChatbotHandler) HandleChat(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input chatbotdto.ChatInput
		decoder := json.NewDecoder(bytes.NewReader(c.Body()))
		decoder.UseNumber()
		if err := decoder.Decode(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err))
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err))
			return nil
		}

		reply, err := h.ChatbotService.Chat(c.Context(), input.Message)
		basehdl.HandleResponse(c, reply, err)
		return nil
	})
}

// HandleUnduhSurat mengisi templat surat dan mengirimkannya sebagai
// lampiran unduhan
func (h *ChatbotHandler) HandleUnduhSurat(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		suratID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Nomor surat tidak valid", common.StatusBadRequest, err))
			return nil
		}

		filename, content, err := h.ChatbotService.RenderSurat(c.Context(), suratID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		c.Set(fiber.HeaderContentType, ContentTypeDocx)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.Send(content)
	})
}
