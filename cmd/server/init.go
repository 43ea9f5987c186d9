package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mirzasnowy/desa-medalsari-sub000/config"
	authmodels "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/auth/models"
	chatbotmodels "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/models"
	desamodels "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/models"
	kontenmodels "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/konten/models"
	mediamodels "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/media/models"
	pesanmodels "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/pesan/models"
	potensimodels "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/potensi/models"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/database"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/utility"
)

// InitGlobal menginisialisasi seluruh variabel global aplikasi
func InitGlobal() {
	initColNames()         // Nama-nama collection di database
	initValidator()        // Validator data masukan
	initConfig()           // Konfigurasi server
	initDatabase_MongoDB() // Koneksi database
	initFirebase()         // Firebase Admin SDK (opsional)
}

// initColNames menginisialisasi nama seluruh collection di database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.PerangkatDesa = "perangkat_desa"
	global.MongoDB_ColNames.StatistikPenduduk = "statistik_penduduk"
	global.MongoDB_ColNames.Berita = "berita"
	global.MongoDB_ColNames.Galeri = "galeri"
	global.MongoDB_ColNames.Wisata = "wisata"
	global.MongoDB_ColNames.Umkm = "umkm"
	global.MongoDB_ColNames.KearifanLokal = "kearifan_lokal"
	global.MongoDB_ColNames.PesanKontak = "pesan_kontak"
	global.MongoDB_ColNames.ChatbotFaq = "chatbot_faq"
	global.MongoDB_ColNames.ChatbotSurat = "chatbot_surat"
	global.MongoDB_ColNames.MediaUploads = "media_uploads"

	logrus.Info("Initialized collection names")
}

// initValidator menginisialisasi validator (termasuk custom validators)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig menginisialisasi konfigurasi server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB menginisialisasi koneksi database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Pastikan database dan seluruh collection sudah ada
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Buat index tiap collection dari tag `index:` pada model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	names := global.MongoDB_ColNames

	database.CreateIndexes(context.TODO(), db.Collection(names.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(names.PerangkatDesa), desamodels.PerangkatDesa{})
	database.CreateIndexes(context.TODO(), db.Collection(names.StatistikPenduduk), desamodels.StatistikPenduduk{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Berita), kontenmodels.Berita{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Galeri), kontenmodels.Galeri{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Wisata), potensimodels.Wisata{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Umkm), potensimodels.Umkm{})
	database.CreateIndexes(context.TODO(), db.Collection(names.KearifanLokal), potensimodels.KearifanLokal{})
	database.CreateIndexes(context.TODO(), db.Collection(names.PesanKontak), pesanmodels.PesanKontak{})
	database.CreateIndexes(context.TODO(), db.Collection(names.ChatbotFaq), chatbotmodels.FaqEntry{})
	database.CreateIndexes(context.TODO(), db.Collection(names.ChatbotSurat), chatbotmodels.SuratTemplate{})
	database.CreateIndexes(context.TODO(), db.Collection(names.MediaUploads), mediamodels.MediaUpload{})
}

// initFirebase menginisialisasi Firebase Admin SDK.
// Tidak fatal bila gagal: jalur masuk email+password tetap berfungsi.
func initFirebase() {
	cfg := global.MongoDB_ServerConfig

	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config tidak lengkap, inisialisasi Firebase dilewati")
		return
	}

	err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
	if err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		return
	}

	logrus.Info("Firebase initialized successfully")
}
