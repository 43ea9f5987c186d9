// Package router mendaftarkan route domain chatbot.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	chatbothdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/handler"
	apirouter "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/router"
)

// Register mendaftarkan route chatbot ke v1: percakapan dan unduhan
// surat publik, CRUD FAQ/templat untuk admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	chatbotHandler, err := chatbothdl.NewChatbotHandler()
	if err != nil {
		return fmt.Errorf("create chatbot handler: %w", err)
	}
	v1.Post("/chatbot/chat", chatbotHandler.HandleChat)
	v1.Get("/chatbot/surat/:id/unduh", chatbotHandler.HandleUnduhSurat)

	faqHandler, err := chatbothdl.NewFaqHandler()
	if err != nil {
		return fmt.Errorf("create chatbot faq handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/chatbot/faq", faqHandler, apirouter.ReadWriteConfig)

	suratHandler, err := chatbothdl.NewSuratTemplateHandler()
	if err != nil {
		return fmt.Errorf("create chatbot surat handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/chatbot/surat", suratHandler, apirouter.ReadWriteConfig)

	return nil
}
