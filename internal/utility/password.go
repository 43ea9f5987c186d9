package utility

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GenerateSalt membuat salt acak 16 byte dalam bentuk hex
func GenerateSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword menghasilkan hash bcrypt dari kata sandi + salt
func HashPassword(password string, salt string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password+salt), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// ComparePassword mencocokkan kata sandi polos dengan hash yang tersimpan
func ComparePassword(hashedPassword string, password string, salt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password+salt)) == nil
}
