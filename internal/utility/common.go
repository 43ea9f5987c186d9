package utility

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/logger"
)

// GoProtect membungkus sebuah fungsi agar panic di dalamnya tidak
// menghentikan program. Panic ditangkap dan dicatat sebagai error.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			logger.GetAppLogger().Errorf("Panic tertangkap: %v", err)
		}
	}()

	f()
}

// PrettyPrint mengubah interface menjadi string JSON berindentasi
func PrettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "\t")
	return string(s)
}

// UnixMilli mengambil milidetik dari waktu yang diberikan
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli mengambil timestamp saat ini dalam milidetik.
// Seluruh field createdAt/updatedAt di basis data memakai satuan ini.
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}

// LogWarning mencatat log peringatan dengan pasangan key-value tambahan
func LogWarning(msg string, args ...interface{}) {
	fields := make(map[string]interface{})
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			if key, ok := args[i].(string); ok {
				fields[key] = args[i+1]
			}
		}
	}
	logger.GetAppLogger().WithFields(fields).Warn(msg)
}

// ValidateEmail memeriksa format alamat email
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return common.ErrInvalidEmail
	}
	return nil
}

// ValidatePassword memeriksa panjang minimal kata sandi
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return common.ErrWeakPassword
	}
	return nil
}

// ConvertStruct menyalin isi satu struct ke struct lain lewat JSON.
// Dipakai untuk mengubah DTO menjadi model sebelum disimpan.
func ConvertStruct(source interface{}, target interface{}) (interface{}, error) {
	jsonData, err := json.Marshal(source)
	if err != nil {
		return nil, fmt.Errorf("marshal source failed: %w", err)
	}

	if err := json.Unmarshal(jsonData, target); err != nil {
		return nil, fmt.Errorf("unmarshal to target failed: %w", err)
	}

	return target, nil
}
