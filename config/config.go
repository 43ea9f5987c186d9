package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration memuat seluruh konfigurasi statis aplikasi.
// Semua kredensial (termasuk kunci layanan hosting gambar) hidup di sini,
// di sisi server — tidak pernah tersebar sebagai konstanta per modul.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Mode seeding data awal
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Alamat listen server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Rahasia JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URI koneksi MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Nama basis data
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Origin yang diizinkan (dipisah koma, * = semua)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Izinkan pengiriman credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Maksimum request per window (0 = nonaktif)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Lebar window (detik)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Aktif/nonaktif rate limiting

	// Konfigurasi Firebase (opsional — jalur masuk admin lewat ID token)
	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`       // Firebase Project ID
	FirebaseCredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH"` // Path berkas service account JSON

	// Layanan hosting gambar (kredensial hanya di server)
	ImageHostUploadURL string `env:"IMAGE_HOST_UPLOAD_URL" envDefault:"https://api.imgbb.com/1/upload"` // Endpoint unggah
	ImageHostAPIKey    string `env:"IMAGE_HOST_API_KEY"`                                                // Kunci API layanan hosting
	ImageMaxSizeMB     int    `env:"IMAGE_MAX_SIZE_MB" envDefault:"5"`                                  // Batas ukuran unggahan (MB)

	// Akun admin awal (dibuat saat seeding jika belum ada)
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@medalsari.desa.id"` // Email admin awal
	AdminPassword string `env:"ADMIN_PASSWORD"`                                   // Kata sandi admin awal (kosong = tidak dibuat)

	// Identitas desa untuk pengisian templat surat
	NamaDesa      string `env:"NAMA_DESA" envDefault:"Medalsari"`      // Nama desa
	NamaKecamatan string `env:"NAMA_KECAMATAN" envDefault:"Pangkalan"` // Nama kecamatan

	// Direktori berkas templat surat .docx
	SuratTemplateDir string `env:"SURAT_TEMPLATE_DIR" envDefault:"assets/surat"`

	// Frontend URL
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// Konfigurasi TLS/HTTPS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Aktifkan HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Path berkas sertifikat (.crt atau .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Path berkas private key (.key)

	// Worker pembersih unggahan yatim
	MediaSweepInterval  int `env:"MEDIA_SWEEP_INTERVAL" envDefault:"3600"`  // Interval sapuan (detik)
	MediaOrphanAgeHours int `env:"MEDIA_ORPHAN_AGE_HOURS" envDefault:"24"` // Usia minimum unggahan tak terpakai sebelum dihapus
}

// getEnvPath mengembalikan path berkas env sesuai lingkungan
func getEnvPath() string {
	// Default ke lingkungan development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Pakai fmt.Printf karena logger mungkin belum di-init di titik ini
		fmt.Printf("Tidak bisa mendapatkan direktori kerja: %v\n", err)
		return ""
	}

	// Jalan naik mencari direktori config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig membaca konfigurasi dari berkas env lalu mem-parse environment
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Direktori config/env tidak ditemukan\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Tidak bisa memuat berkas env di %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Gagal mem-parse konfigurasi: %+v\n", err)
		return nil
	}

	return &cfg
}
