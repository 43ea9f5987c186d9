package global

import (
	"github.com/mirzasnowy/desa-medalsari-sub000/config"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName memuat nama seluruh collection di MongoDB
type MongoDB_CollectionName struct {
	Users             string // Collection pengguna admin
	PerangkatDesa     string // Collection perangkat desa (struktur organisasi)
	StatistikPenduduk string // Collection statistik penduduk (dokumen tunggal)
	Berita            string // Collection berita desa
	Galeri            string // Collection foto galeri
	Wisata            string // Collection destinasi wisata
	Umkm              string // Collection UMKM
	KearifanLokal     string // Collection kearifan lokal
	PesanKontak       string // Collection pesan dari formulir kontak publik
	ChatbotFaq        string // Collection entri FAQ chatbot
	ChatbotSurat      string // Collection templat surat chatbot
	MediaUploads      string // Collection buku besar unggahan gambar
}

// Variabel global
var Validate *validator.Validate               // Validator data masukan
var MongoDB_Session *mongo.Client              // Sesi koneksi MongoDB
var MongoDB_ServerConfig *config.Configuration // Konfigurasi server
var MongoDB_ColNames MongoDB_CollectionName    // Nama-nama collection

// Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry berisi collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry berisi databases
