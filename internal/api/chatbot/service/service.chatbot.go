package chatbotsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/service"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/models"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
)

// FaqService memuat logika data entri FAQ chatbot
type FaqService struct {
	*basesvc.BaseServiceMongoImpl[models.FaqEntry]
}

// NewFaqService membuat FaqService baru
func NewFaqService() (*FaqService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ChatbotFaq)
	if !exist {
		return nil, fmt.Errorf("failed to get chatbot faq collection: %v", common.ErrNotFound)
	}
	return &FaqService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.FaqEntry](collection),
	}, nil
}

// ListOrdered mengambil seluruh entri FAQ terurut nomor
func (s *FaqService) ListOrdered(ctx context.Context) ([]models.FaqEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "faqId", Value: 1}})
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{}, opts)
}

// SuratService memuat logika data templat surat chatbot
type SuratService struct {
	*basesvc.BaseServiceMongoImpl[models.SuratTemplate]
}

// NewSuratService membuat SuratService baru
func NewSuratService() (*SuratService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ChatbotSurat)
	if !exist {
		return nil, fmt.Errorf("failed to get chatbot surat collection: %v", common.ErrNotFound)
	}
	return &SuratService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.SuratTemplate](collection),
	}, nil
}

// ListOrdered mengambil seluruh templat surat terurut nomor
func (s *SuratService) ListOrdered(ctx context.Context) ([]models.SuratTemplate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "suratId", Value: 1}})
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{}, opts)
}

// FindBySuratID mengambil satu templat berdasarkan nomor surat
func (s *SuratService) FindBySuratID(ctx context.Context, suratID int) (models.SuratTemplate, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"suratId": suratID}, nil)
}

// ChatbotService menggabungkan FAQ dan templat surat untuk menjawab pesan
type ChatbotService struct {
	FaqService   *FaqService
	SuratService *SuratService
}

// NewChatbotService membuat ChatbotService baru
func NewChatbotService() (*ChatbotService, error) {
	faqService, err := NewFaqService()
	if err != nil {
		return nil, err
	}
	suratService, err := NewSuratService()
	if err != nil {
		return nil, err
	}
	return &ChatbotService{
		FaqService:   faqService,
		SuratService: suratService,
	}, nil
}

// Chat menjawab satu pesan pengunjung: memuat daftar FAQ dan templat
// surat lalu menjalankan matcher.
func (s *ChatbotService) Chat(ctx context.Context, message string) (Reply, error) {
	faqs, err := s.FaqService.ListOrdered(ctx)
	if err != nil {
		return Reply{}, err
	}
	templates, err := s.SuratService.ListOrdered(ctx)
	if err != nil {
		return Reply{}, err
	}
	return Match(message, faqs, templates), nil
}
