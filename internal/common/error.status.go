package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Konstanta HTTP Status Code
const (
	// Kode sukses (2xx)
	StatusOK        = 200 // Berhasil
	StatusCreated   = 201 // Berhasil membuat data baru
	StatusAccepted  = 202 // Permintaan diterima
	StatusNoContent = 204 // Berhasil tanpa isi balasan

	// Kode kesalahan klien (4xx)
	StatusBadRequest         = 400 // Permintaan tidak valid
	StatusUnauthorized       = 401 // Belum terautentikasi
	StatusForbidden          = 403 // Tidak punya hak akses
	StatusNotFound           = 404 // Sumber daya tidak ditemukan
	StatusMethodNotAllowed   = 405 // Metode HTTP tidak didukung
	StatusConflict           = 409 // Konflik data
	StatusGone               = 410 // Sumber daya sudah tidak ada
	StatusPreconditionFailed = 412 // Prasyarat tidak terpenuhi
	StatusTooManyRequests    = 429 // Terlalu banyak permintaan

	// Kode kesalahan server (5xx)
	StatusInternalServerError = 500 // Kesalahan server
	StatusNotImplemented      = 501 // Fitur belum tersedia
	StatusBadGateway          = 502 // Gateway tidak valid
	StatusServiceUnavailable  = 503 // Layanan tidak tersedia
	StatusGatewayTimeout      = 504 // Gateway timeout
)

// Pesan balasan
const (
	// Pesan sukses
	MsgSuccess   = "Operasi berhasil"
	MsgCreated   = "Data berhasil dibuat"
	MsgAccepted  = "Permintaan diterima"
	MsgNoContent = "Tidak ada isi balasan"

	// Pesan kesalahan
	MsgBadRequest         = "Permintaan tidak valid"
	MsgUnauthorized       = "Silakan masuk terlebih dahulu"
	MsgForbidden          = "Tidak punya hak akses"
	MsgNotFound           = "Sumber daya tidak ditemukan"
	MsgMethodNotAllowed   = "Metode tidak didukung"
	MsgConflict           = "Konflik data"
	MsgTooManyRequests    = "Terlalu banyak permintaan"
	MsgInternalError      = "Kesalahan sistem"
	MsgServiceUnavailable = "Layanan tidak tersedia"

	// Pesan token
	MsgTokenMissing = "Token autentikasi tidak ditemukan"
	MsgTokenInvalid = "Token tidak valid"
	MsgTokenExpired = "Token sudah kedaluwarsa"

	// Pesan validasi
	MsgValidationError = "Data tidak valid"
	MsgDatabaseError   = "Kesalahan saat mengakses basis data"
	MsgInvalidFormat   = "Format data tidak valid"
)

// ErrorCode mendefinisikan kode kesalahan terstruktur.
// Kode inilah identitas kesalahan — bukan isi pesan — sehingga penanganan
// otomatis tidak bergantung pada kata-kata yang kebetulan dipakai.
type ErrorCode struct {
	Code        string // Kode kesalahan (contoh: AUTH_001)
	Category    string // Kategori kesalahan (contoh: Authentication)
	SubCategory string // Sub-kategori (contoh: Token)
	Description string // Deskripsi singkat
}

// Daftar kode kesalahan menurut hierarki kategori
var (
	// Kesalahan sistem (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Kesalahan internal sistem",
	}

	// Kesalahan autentikasi (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Kesalahan autentikasi umum",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Kesalahan terkait token",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Kesalahan kredensial masuk",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "Hak akses tidak mencukupi",
	}

	// Kesalahan validasi (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Kesalahan validasi umum",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Kesalahan data masukan",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Kesalahan format data",
	}

	// Kesalahan basis data (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Kesalahan basis data umum",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Kesalahan koneksi basis data",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Kesalahan kueri data",
	}

	// Kesalahan logika bisnis (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Kesalahan logika bisnis umum",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Kesalahan status bisnis",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Kesalahan operasi bisnis",
	}

	// Kesalahan media (MEDIA_xxx) — unggah gambar dan berkas templat
	ErrCodeMediaUpload = ErrorCode{
		Code:        "MEDIA_001",
		Category:    "Media",
		SubCategory: "Upload",
		Description: "Kesalahan unggah gambar ke layanan hosting",
	}

	ErrCodeMediaTemplate = ErrorCode{
		Code:        "MEDIA_002",
		Category:    "Media",
		SubCategory: "Template",
		Description: "Kesalahan memuat atau mengisi templat dokumen",
	}

	// Kesalahan chatbot (BOT_xxx)
	ErrCodeChatbot = ErrorCode{
		Code:        "BOT_001",
		Category:    "Chatbot",
		SubCategory: "General",
		Description: "Kesalahan pemrosesan pesan chatbot",
	}
)

// Error mendefinisikan struktur kesalahan lengkap
type Error struct {
	Code       ErrorCode // Kode kesalahan terstruktur
	Message    string    // Pesan untuk pengguna
	StatusCode int       // HTTP status code
	Details    any       // Informasi tambahan tentang kesalahan
}

// Error mengembalikan pesan kesalahan
func (e *Error) Error() string {
	return e.Message
}

// Is memeriksa apakah error ini sama dengan target (mendukung errors.Is).
// Identitas dibandingkan lewat Code.Code, bukan isi pesan.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}

	return false
}

// NewError membuat error baru dengan informasi lengkap
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Error standar yang dipakai lintas modul
var (
	// Autentikasi
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Email atau kata sandi salah", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "Sesi sudah berakhir", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Token tidak valid", StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Token autentikasi tidak ditemukan", StatusUnauthorized, nil)
	ErrUserBlocked        = NewError(ErrCodeAuthCredentials, "Akun sedang diblokir", StatusForbidden, nil)
	ErrUserNotFound       = NewError(ErrCodeAuthCredentials, "Pengguna tidak ditemukan", StatusNotFound, nil)

	// Validasi
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Data masukan tidak valid", StatusBadRequest, nil)
	ErrInvalidEmail  = NewError(ErrCodeValidationInput, "Format email tidak valid", StatusBadRequest, nil)
	ErrWeakPassword  = NewError(ErrCodeValidationInput, "Kata sandi terlalu lemah", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Format data tidak valid", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Ada isian wajib yang kosong", StatusBadRequest, nil)

	// Basis data
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "Data tidak ditemukan", StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "Data sudah ada", StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Kesalahan koneksi basis data", StatusServiceUnavailable, nil)

	// Media
	ErrUploadFailed    = NewError(ErrCodeMediaUpload, "Gagal mengunggah gambar", StatusBadGateway, nil)
	ErrUploadTooLarge  = NewError(ErrCodeMediaUpload, "Ukuran gambar melebihi batas", StatusBadRequest, nil)
	ErrUploadBadType   = NewError(ErrCodeMediaUpload, "Jenis berkas tidak didukung", StatusBadRequest, nil)
	ErrTemplateMissing = NewError(ErrCodeMediaTemplate, "Berkas templat surat tidak ditemukan", StatusNotFound, nil)
	ErrTemplateRender  = NewError(ErrCodeMediaTemplate, "Gagal mengisi templat surat", StatusInternalServerError, nil)
)

// ErrorMongo — error spesifik MongoDB
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, "Kesalahan koneksi MongoDB", StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, "Kesalahan jaringan MongoDB", StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, "Koneksi MongoDB timeout", StatusServiceUnavailable, nil)
	ErrMongoAuth       = NewError(ErrCodeAuth, "Kesalahan autentikasi MongoDB", StatusUnauthorized, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, "Kesalahan kueri MongoDB", StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, "Kesalahan menulis data MongoDB", StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, "Data duplikat di MongoDB", StatusConflict, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, "Kesalahan sistem MongoDB", StatusInternalServerError, nil)
)

// ConvertMongoError mengonversi error dari driver MongoDB ke taksonomi sistem
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// ErrNotFound jangan dikonversi — sudah bagian dari taksonomi
	if errors.Is(err, ErrNotFound) {
		return err
	}

	// Klasifikasi berdasarkan kode CommandError
	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 200 && mongoErr.Code < 300:
			return ErrMongoAuth
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		case mongoErr.Code >= 500:
			return ErrMongoSystem
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
