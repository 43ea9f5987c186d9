package utility

import (
	"fmt"

	jwt "github.com/dgrijalva/jwt-go"

	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
)

// JwtClaims adalah isi token akses yang diterbitkan server
type JwtClaims struct {
	UserID string `json:"userId"`
	Time   string `json:"time"`
	Random int    `json:"random"`
	jwt.StandardClaims
}

// CreateToken menerbitkan JWT (HS256) untuk sebuah user.
// Parameter time dan random membuat token tiap login berbeda sehingga
// bisa dibedakan per perangkat.
//
// Mengembalikan:
// - map[string]string: {"token": <jwt>}
// - error: Error bila penandatanganan gagal
func CreateToken(jwtSecret string, userID string, hexTime string, randomNumber int) (map[string]string, error) {
	claims := JwtClaims{
		UserID: userID,
		Time:   hexTime,
		Random: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken memverifikasi JWT dan mengembalikan claims-nya
func ParseToken(jwtSecret string, tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}
