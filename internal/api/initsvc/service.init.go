// Package initsvc memuat InitService untuk pengisian data awal
// (admin bawaan, dokumen statistik, FAQ dan templat surat chatbot).
// Dipisah ke package sendiri agar tidak terjadi import cycle antar
// service domain.
package initsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authdto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/auth/dto"
	authsvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/auth/service"
	chatbotmodels "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/models"
	chatbotsvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/service"
	desadto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/dto"
	desasvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/service"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
)

// InitService mengisi data awal yang dibutuhkan aplikasi saat pertama
// kali berjalan. Seluruh operasinya idempoten: data yang sudah ada
// tidak pernah ditimpa.
type InitService struct {
	userService      *authsvc.UserService
	statistikService *desasvc.StatistikPendudukService
	faqService       *chatbotsvc.FaqService
	suratService     *chatbotsvc.SuratService
}

// NewInitService membuat InitService baru
func NewInitService() (*InitService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	statistikService, err := desasvc.NewStatistikPendudukService()
	if err != nil {
		return nil, fmt.Errorf("failed to create statistik service: %v", err)
	}
	faqService, err := chatbotsvc.NewFaqService()
	if err != nil {
		return nil, fmt.Errorf("failed to create faq service: %v", err)
	}
	suratService, err := chatbotsvc.NewSuratService()
	if err != nil {
		return nil, fmt.Errorf("failed to create surat service: %v", err)
	}
	return &InitService{
		userService:      userService,
		statistikService: statistikService,
		faqService:       faqService,
		suratService:     suratService,
	}, nil
}

// InitAll menjalankan seluruh pengisian data awal
func (s *InitService) InitAll(ctx context.Context) error {
	if err := s.InitAdminUser(ctx); err != nil {
		return err
	}
	if err := s.InitStatistikPenduduk(ctx); err != nil {
		return err
	}
	if err := s.InitChatbotFaq(ctx); err != nil {
		return err
	}
	if err := s.InitChatbotSurat(ctx); err != nil {
		return err
	}
	return nil
}

// InitAdminUser membuat akun admin bawaan dari konfigurasi.
// Dilewati bila email sudah terdaftar atau kata sandi tidak disetel.
func (s *InitService) InitAdminUser(ctx context.Context) error {
	cfg := global.MongoDB_ServerConfig
	if cfg.AdminPassword == "" {
		logrus.Warn("InitAdminUser: ADMIN_PASSWORD kosong, akun admin bawaan tidak dibuat")
		return nil
	}

	_, err := s.userService.FindOne(ctx, bson.M{"email": cfg.AdminEmail}, nil)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	_, err = s.userService.CreateUser(ctx, &authdto.UserCreateInput{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Role:     "admin",
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %v", err)
	}
	logrus.WithFields(logrus.Fields{"email": cfg.AdminEmail}).Info("InitAdminUser: akun admin bawaan dibuat")
	return nil
}

// InitStatistikPenduduk memastikan dokumen statistik tunggal ada,
// berisi nilai nol bila belum pernah diisi
func (s *InitService) InitStatistikPenduduk(ctx context.Context) error {
	_, err := s.statistikService.FindOne(ctx, bson.M{}, nil)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	_, err = s.statistikService.Replace(ctx, &desadto.StatistikPendudukUpsertInput{})
	if err != nil {
		return fmt.Errorf("failed to seed statistik penduduk: %v", err)
	}
	logrus.Info("InitStatistikPenduduk: dokumen statistik bernilai nol dibuat")
	return nil
}

// InitChatbotFaq mengisi entri FAQ bawaan bila collection masih kosong
func (s *InitService) InitChatbotFaq(ctx context.Context) error {
	count, err := s.faqService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, faq := range defaultFaqEntries() {
		if _, err := s.faqService.InsertOne(ctx, faq); err != nil {
			return fmt.Errorf("failed to seed chatbot faq %d: %v", faq.FaqID, err)
		}
	}
	logrus.Info("InitChatbotFaq: entri FAQ bawaan dibuat")
	return nil
}

// InitChatbotSurat mengisi templat surat bawaan bila collection masih kosong
func (s *InitService) InitChatbotSurat(ctx context.Context) error {
	count, err := s.suratService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, tpl := range defaultSuratTemplates() {
		if _, err := s.suratService.InsertOne(ctx, tpl); err != nil {
			return fmt.Errorf("failed to seed chatbot surat %d: %v", tpl.SuratID, err)
		}
	}
	logrus.Info("InitChatbotSurat: templat surat bawaan dibuat")
	return nil
}

// defaultFaqEntries mengembalikan entri FAQ bawaan chatbot
func defaultFaqEntries() []chatbotmodels.FaqEntry {
	return []chatbotmodels.FaqEntry{
		{
			FaqID:      1,
			Pertanyaan: "Bagaimana cara membuat surat pengantar KTP?",
			Jawaban: "Datang ke kantor desa dengan membawa KK asli dan fotokopi, lalu sampaikan keperluan Anda ke petugas pelayanan. " +
				"Anda juga bisa menyiapkan suratnya lebih dulu lewat chatbot ini dengan mengetik /surat.",
			KataKunci: []string{"ktp", "surat pengantar", "pengantar ktp"},
		},
		{
			FaqID:      2,
			Pertanyaan: "Apa saja syarat mengurus surat keterangan domisili?",
			Jawaban: "Syaratnya: KTP asli dan fotokopi, KK asli dan fotokopi, serta surat pengantar RT/RW. " +
				"Proses selesai di hari yang sama selama berkas lengkap.",
			KataKunci: []string{"domisili", "keterangan domisili", "syarat domisili"},
		},
		{
			FaqID:      3,
			Pertanyaan: "Kapan jam pelayanan kantor desa?",
			Jawaban:    jamPelayananText,
			KataKunci:  []string{"jam", "buka", "pelayanan", "jam kerja"},
		},
		{
			FaqID:      4,
			Pertanyaan: "Bagaimana cara mengurus surat keterangan usaha?",
			Jawaban: "Bawa KTP, KK, dan surat pengantar RT/RW ke kantor desa, lalu isi formulir keterangan usaha. " +
				"Templat suratnya juga tersedia lewat perintah /surat.",
			KataKunci: []string{"usaha", "keterangan usaha", "sku"},
		},
		{
			FaqID:      5,
			Pertanyaan: "Bagaimana cara melaporkan keluhan atau aspirasi?",
			Jawaban: "Gunakan formulir kontak di halaman Kontak website ini. " +
				"Pesan Anda masuk langsung ke petugas desa dan akan ditindaklanjuti pada jam pelayanan.",
			KataKunci: []string{"keluhan", "aspirasi", "lapor", "pengaduan"},
		},
	}
}

// defaultSuratTemplates mengembalikan templat surat bawaan chatbot.
// Nama berkas merujuk file .docx pada direktori templat surat.
func defaultSuratTemplates() []chatbotmodels.SuratTemplate {
	return []chatbotmodels.SuratTemplate{
		{
			SuratID:   1,
			Nama:      "Surat Pengantar KTP",
			Deskripsi: "Pengantar desa untuk pembuatan atau perpanjangan KTP.",
			Berkas:    "surat-pengantar-ktp.docx",
			KataKunci: []string{"ktp", "pengantar ktp"},
		},
		{
			SuratID:   2,
			Nama:      "Surat Keterangan Domisili",
			Deskripsi: "Keterangan bertempat tinggal di wilayah desa.",
			Berkas:    "surat-keterangan-domisili.docx",
			KataKunci: []string{"domisili", "tempat tinggal"},
		},
		{
			SuratID:   3,
			Nama:      "Surat Keterangan Usaha",
			Deskripsi: "Keterangan memiliki usaha di wilayah desa.",
			Berkas:    "surat-keterangan-usaha.docx",
			KataKunci: []string{"usaha", "sku"},
		},
		{
			SuratID:   4,
			Nama:      "Surat Keterangan Tidak Mampu",
			Deskripsi: "Keterangan tidak mampu untuk keperluan bantuan atau beasiswa.",
			Berkas:    "surat-keterangan-tidak-mampu.docx",
			KataKunci: []string{"tidak mampu", "sktm", "beasiswa"},
		},
	}
}

const jamPelayananText = "Senin - Kamis pukul 08.00 - 15.00 WIB, Jumat pukul 08.00 - 11.00 WIB. " +
	"Sabtu, Minggu, dan hari libur nasional tutup."
