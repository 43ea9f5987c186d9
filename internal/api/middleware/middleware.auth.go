// Package middleware memuat middleware HTTP aplikasi (autentikasi, response).
package middleware

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/auth/models"
	basesvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/service"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/utility"
)

// RoleAdmin adalah peran yang diwajibkan untuk seluruh operasi tulis konten
const RoleAdmin = "admin"

// AuthManager menampung dependensi autentikasi (service user + cache)
type AuthManager struct {
	userService *basesvc.BaseServiceMongoImpl[authmodels.User]
	cache       *utility.Cache
}

var (
	authManager     *AuthManager
	authManagerOnce sync.Once
)

// GetAuthManager mengembalikan singleton AuthManager
func GetAuthManager() (*AuthManager, error) {
	var initErr error
	authManagerOnce.Do(func() {
		userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
		if !exist {
			initErr = fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
			return
		}
		authManager = &AuthManager{
			userService: basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
			// Cache user per token untuk mengurangi query pada request beruntun
			cache: utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	if authManager == nil {
		return nil, fmt.Errorf("auth manager belum terinisialisasi")
	}
	return authManager, nil
}

// findUserByToken mencari user pemilik token. Token terbaru tersimpan di field
// `token`, token per perangkat di `tokens.jwtToken`.
func (m *AuthManager) findUserByToken(c fiber.Ctx, token string) (*authmodels.User, error) {
	if cached, found := m.cache.Get(token); found {
		if user, ok := cached.(*authmodels.User); ok {
			return user, nil
		}
	}

	filters := []bson.M{
		{"token": token},
		{"tokens.jwtToken": token},
		{"tokens": bson.M{"$elemMatch": bson.M{"jwtToken": token}}},
	}

	for _, filter := range filters {
		user, err := m.userService.FindOne(c.Context(), filter, nil)
		if err == nil {
			m.cache.Set(token, &user)
			return &user, nil
		}
	}

	return nil, common.ErrTokenInvalid
}

// AuthMiddleware membuat middleware autentikasi JWT.
//
// Parameter:
// - requiredRole: peran yang diwajibkan ("" berarti cukup login)
//
// Middleware menyimpan user_id dan user ke Locals untuk handler berikutnya.
func AuthMiddleware(requiredRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		manager, err := GetAuthManager()
		if err != nil {
			logrus.WithError(err).Error("AuthMiddleware: gagal menginisialisasi auth manager")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeInternalServer,
				"Sistem autentikasi belum siap",
				common.StatusInternalServerError,
				err,
			))
			return nil
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		token := parts[1]

		// Token harus bisa diparse dan belum kedaluwarsa
		if _, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token); err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		user, err := manager.findUserByToken(c, token)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Akun telah diblokir: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		if requiredRole == "" {
			return c.Next()
		}

		if user.Role != requiredRole {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Tidak memiliki hak akses untuk operasi ini",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		return c.Next()
	}
}
