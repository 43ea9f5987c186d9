// Package authsvc - service pengguna (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/auth/dto"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/auth/models"
	basesvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/service"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/utility"
)

// UserService memuat logika autentikasi dan pengelolaan pengguna
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService membuat UserService baru
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// CreateUser membuat pengguna baru dengan kata sandi ter-hash
func (s *UserService) CreateUser(ctx context.Context, input *authdto.UserCreateInput) (*models.User, error) {
	salt, err := utility.GenerateSalt()
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Gagal membuat salt", common.StatusInternalServerError, err)
	}
	hashed, err := utility.HashPassword(input.Password, salt)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Gagal meng-hash kata sandi", common.StatusInternalServerError, err)
	}

	role := input.Role
	if role == "" {
		role = "admin"
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Salt:     salt,
		Role:     role,
		Tokens:   []models.Token{},
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// issueToken membuat JWT baru untuk user pada perangkat hwid dan
// menyimpannya ke field token dan tokens.
func (s *UserService) issueToken(ctx context.Context, user models.User, hwid string) (*models.User, error) {
	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), rdNumber)
	if err != nil {
		return nil, err
	}

	user.Token = tokenMap["token"]
	idTokenExist := -1
	for i, t := range user.Tokens {
		if t.Hwid == hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: hwid, JwtToken: tokenMap["token"]})
	} else {
		user.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("issueToken: gagal menyimpan token ke user")
		return nil, err
	}
	return &updated, nil
}

// Login mengautentikasi pengguna dengan email dan kata sandi,
// lalu menerbitkan JWT untuk perangkat tersebut.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Akun telah diblokir: "+user.BlockNote, common.StatusForbidden, nil)
	}

	if !utility.ComparePassword(user.Password, input.Password, user.Salt) {
		return nil, common.ErrInvalidCredentials
	}

	updated, err := s.issueToken(ctx, user, input.Hwid)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updated.ID.Hex(), "email": updated.Email}).Info("Login: berhasil masuk")
	return updated, nil
}

// LoginWithFirebase mengautentikasi pengguna dengan Firebase ID token.
// User lokal dicari berdasarkan email Firebase; hanya user yang sudah
// terdaftar (admin yang di-seed) yang boleh masuk.
func (s *UserService) LoginWithFirebase(ctx context.Context, input *authdto.FirebaseLoginInput) (*models.User, error) {
	token, err := utility.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		logrus.WithError(err).Error("LoginWithFirebase: gagal memverifikasi Firebase ID token")
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Token tidak valid", common.StatusUnauthorized, err)
	}

	firebaseUser, err := utility.GetUserByUID(ctx, token.UID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"firebase_uid": token.UID, "error": err.Error()}).Error("LoginWithFirebase: gagal mengambil data user dari Firebase")
		return nil, err
	}

	if firebaseUser.Email == "" {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Akun Firebase tidak memiliki email", common.StatusUnauthorized, nil)
	}

	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": firebaseUser.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeAuthCredentials, "Email ini tidak terdaftar sebagai pengelola", common.StatusForbidden, nil)
		}
		return nil, err
	}

	if user.FirebaseUID != "" && user.FirebaseUID != token.UID {
		logrus.WithFields(logrus.Fields{
			"existing_firebase_uid": user.FirebaseUID,
			"new_firebase_uid":      token.UID,
		}).Warn("LoginWithFirebase: UID Firebase tidak cocok dengan akun tersimpan")
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Email sudah terhubung dengan akun Firebase lain", common.StatusConflict, nil)
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuth, "Akun telah diblokir", common.StatusForbidden, nil)
	}

	// Sinkronkan atribut Firebase ke user lokal
	syncData := &basesvc.UpdateData{Set: map[string]interface{}{
		"firebaseUid":   token.UID,
		"emailVerified": firebaseUser.EmailVerified,
	}}
	if firebaseUser.DisplayName != "" {
		syncData.Set["name"] = firebaseUser.DisplayName
	}
	if firebaseUser.PhotoURL != "" {
		syncData.Set["avatarUrl"] = firebaseUser.PhotoURL
	}
	user, err = s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, syncData)
	if err != nil {
		return nil, err
	}

	updated, err := s.issueToken(ctx, user, input.Hwid)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updated.ID.Hex(), "email": updated.Email}).Info("LoginWithFirebase: berhasil masuk")
	return updated, nil
}

// Logout mengeluarkan pengguna dari satu perangkat (hapus token per hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// ChangePassword mengganti kata sandi dan mencabut seluruh sesi aktif
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if !utility.ComparePassword(user.Password, input.OldPassword, user.Salt) {
		return common.NewError(common.ErrCodeAuthCredentials, "Kata sandi lama salah", common.StatusUnauthorized, nil)
	}

	salt, err := utility.GenerateSalt()
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Gagal membuat salt", common.StatusInternalServerError, err)
	}
	hashed, err := utility.HashPassword(input.NewPassword, salt)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Gagal meng-hash kata sandi", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": hashed,
			"salt":     salt,
			"tokens":   []models.Token{},
			"token":    "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// BlockUser memblokir pengguna berdasarkan email
func (s *UserService) BlockUser(ctx context.Context, input *authdto.BlockUserInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, err
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   true,
			"blockNote": input.Note,
			"tokens":    []models.Token{},
			"token":     "",
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UnBlockUser membuka blokir pengguna berdasarkan email
func (s *UserService) UnBlockUser(ctx context.Context, input *authdto.UnBlockUserInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		return nil, err
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock": false,
		},
		Unset: map[string]interface{}{
			"blockNote": "",
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
