package chatbothdl

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	chatbotdto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/dto"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/models"
	chatbotsvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/service"
)

// SuratTemplateHandler menangani CRUD templat surat chatbot
type SuratTemplateHandler struct {
	*basehdl.BaseHandler[models.SuratTemplate, chatbotdto.SuratCreateInput, chatbotdto.SuratUpdateInput]
	SuratService *chatbotsvc.SuratService
}

// NewSuratTemplateHandler membuat SuratTemplateHandler baru
func NewSuratTemplateHandler() (*SuratTemplateHandler, error) {
	service, err := chatbotsvc.NewSuratService()
	if err != nil {
		return nil, fmt.Errorf("failed to create chatbot surat service: %v", err)
	}
	hdl := &SuratTemplateHandler{
		SuratService: service,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.SuratTemplate, chatbotdto.SuratCreateInput, chatbotdto.SuratUpdateInput](service.BaseServiceMongoImpl)
	hdl.SetDefaultSort(bson.D{{Key: "suratId", Value: 1}})
	return hdl, nil
}
