package utility

import (
	"errors"
	"testing"

	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
)

func TestCreateAndParseToken(t *testing.T) {
	secret := "rahasia-test"
	result, err := CreateToken(secret, "user-123", "1a2b3c", 42)
	if err != nil {
		t.Fatalf("CreateToken gagal: %v", err)
	}
	tokenString, ok := result["token"]
	if !ok || tokenString == "" {
		t.Fatal("CreateToken tidak mengembalikan token")
	}

	claims, err := ParseToken(secret, tokenString)
	if err != nil {
		t.Fatalf("ParseToken gagal: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, harusnya %q", claims.UserID, "user-123")
	}
	if claims.Time != "1a2b3c" {
		t.Errorf("Time = %q, harusnya %q", claims.Time, "1a2b3c")
	}
	if claims.Random != 42 {
		t.Errorf("Random = %d, harusnya 42", claims.Random)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	result, err := CreateToken("rahasia-a", "user-123", "ff", 1)
	if err != nil {
		t.Fatalf("CreateToken gagal: %v", err)
	}

	_, err = ParseToken("rahasia-b", result["token"])
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("ParseToken dengan secret salah = %v, harusnya ErrTokenInvalid", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("rahasia", "bukan.token.jwt")
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("ParseToken token rusak = %v, harusnya ErrTokenInvalid", err)
	}
}

func TestHashAndComparePassword(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt gagal: %v", err)
	}

	hashed, err := HashPassword("kata-sandi-kuat", salt)
	if err != nil {
		t.Fatalf("HashPassword gagal: %v", err)
	}
	if hashed == "kata-sandi-kuat" {
		t.Error("hash tidak boleh sama dengan kata sandi asli")
	}

	if !ComparePassword(hashed, "kata-sandi-kuat", salt) {
		t.Error("ComparePassword gagal untuk kata sandi yang benar")
	}
	if ComparePassword(hashed, "kata-sandi-salah", salt) {
		t.Error("ComparePassword lolos untuk kata sandi yang salah")
	}
}
