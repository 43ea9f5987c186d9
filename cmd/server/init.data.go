package main

import (
	"context"

	"github.com/mirzasnowy/desa-medalsari-sub000/internal/api/initsvc"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/logger"
)

// InitDefaultData mengisi data awal aplikasi: akun admin bawaan, dokumen
// statistik bernilai nol, serta FAQ dan templat surat bawaan chatbot.
// Seluruh langkah idempoten, aman dijalankan setiap kali server start.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("[INIT] Starting InitDefaultData...")

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	if err := initService.InitAll(context.Background()); err != nil {
		log.Fatalf("Failed to initialize default data: %v", err)
	}

	log.Info("[INIT] InitDefaultData completed successfully")
}
