// Package authhdl memuat handler autentikasi dan pengelolaan pengguna.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/auth/dto"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/auth/models"
	authsvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/auth/service"
	basehdl "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/handler"
	basesvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/service"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
)

// UserHandler menangani request autentikasi dan pengelolaan pengguna
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserChangeInfoInput]
	userService *authsvc.UserService
}

// NewUserHandler membuat instance UserHandler baru
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserChangeInfoInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// InsertOne menimpa handler generik agar kata sandi di-hash sebelum disimpan
func (h *UserHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.CreateUser(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user.Sanitize()
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleLogin menangani login dengan email dan kata sandi
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	var input authdto.UserLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.Login(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user.Sanitize()
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleLoginWithFirebase menangani login dengan Firebase ID token
func (h *UserHandler) HandleLoginWithFirebase(c fiber.Ctx) error {
	var input authdto.FirebaseLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.LoginWithFirebase(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user.Sanitize()
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleLogout menangani logout pengguna
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "Pengguna belum terautentikasi", common.StatusUnauthorized, nil))
		return nil
	}
	var input authdto.UserLogoutInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "User ID tidak valid", common.StatusBadRequest, err))
		return nil
	}
	err = h.userService.Logout(c.Context(), objID, &input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleGetProfile mengambil profil pengguna yang sedang login
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "Pengguna belum terautentikasi", common.StatusUnauthorized, nil))
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "User ID tidak valid", common.StatusBadRequest, err))
		return nil
	}
	user, err := h.userService.BaseServiceMongoImpl.FindOneById(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user.Sanitize()
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleUpdateProfile memperbarui profil pengguna yang sedang login
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "Pengguna belum terautentikasi", common.StatusUnauthorized, nil))
		return nil
	}
	var input authdto.UserChangeInfoInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "User ID tidak valid", common.StatusBadRequest, err))
		return nil
	}
	update := &basesvc.UpdateData{Set: map[string]interface{}{}}
	if input.Name != "" {
		update.Set["name"] = input.Name
	}
	if input.AvatarURL != "" {
		update.Set["avatarUrl"] = input.AvatarURL
	}
	updatedUser, err := h.userService.BaseServiceMongoImpl.UpdateById(c.Context(), objID, update)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	updatedUser.Sanitize()
	h.HandleResponse(c, updatedUser, nil)
	return nil
}

// HandleChangePassword mengganti kata sandi pengguna yang sedang login
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "Pengguna belum terautentikasi", common.StatusUnauthorized, nil))
		return nil
	}
	var input authdto.UserChangePasswordInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "User ID tidak valid", common.StatusBadRequest, err))
		return nil
	}
	err = h.userService.ChangePassword(c.Context(), objID, &input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleBlockUser memblokir pengguna berdasarkan email
func (h *UserHandler) HandleBlockUser(c fiber.Ctx) error {
	var input authdto.BlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.BlockUser(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user.Sanitize()
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleUnBlockUser membuka blokir pengguna berdasarkan email
func (h *UserHandler) HandleUnBlockUser(c fiber.Ctx) error {
	var input authdto.UnBlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.UnBlockUser(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user.Sanitize()
	h.HandleResponse(c, user, nil)
	return nil
}
