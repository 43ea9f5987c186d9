package chatbothdl

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	chatbotdto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/dto"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/models"
	chatbotsvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/service"
)

// FaqHandler menangani CRUD entri FAQ chatbot
type FaqHandler struct {
	*basehdl.BaseHandler[models.FaqEntry, chatbotdto.FaqCreateInput, chatbotdto.FaqUpdateInput]
	FaqService *chatbotsvc.FaqService
}

// NewFaqHandler membuat FaqHandler baru
func NewFaqHandler() (*FaqHandler, error) {
	service, err := chatbotsvc.NewFaqService()
	if err != nil {
		return nil, fmt.Errorf("failed to create chatbot faq service: %v", err)
	}
	hdl := &FaqHandler{
		FaqService: service,
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.FaqEntry, chatbotdto.FaqCreateInput, chatbotdto.FaqUpdateInput](service.BaseServiceMongoImpl)
	hdl.SetDefaultSort(bson.D{{Key: "faqId", Value: 1}})
	return hdl, nil
}
