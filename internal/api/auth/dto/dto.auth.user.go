// Package authdto memuat DTO domain auth.
package authdto

// UserCreateInput masukan pembuatan pengguna (CRUD admin).
type UserCreateInput struct {
	Name     string `json:"name" validate:"required" maxLength:"100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin"`
}

// UserLoginInput masukan login dengan email dan kata sandi.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Hwid     string `json:"hwid" validate:"required"`
}

// FirebaseLoginInput masukan login dengan Firebase ID token.
type FirebaseLoginInput struct {
	IDToken string `json:"idToken" validate:"required"`
	Hwid    string `json:"hwid" validate:"required"`
}

// UserLogoutInput masukan logout pengguna.
type UserLogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// UserChangeInfoInput masukan perubahan profil pengguna.
type UserChangeInfoInput struct {
	Name      string `json:"name" maxLength:"100"`
	AvatarURL string `json:"avatarUrl"`
}

// UserChangePasswordInput masukan penggantian kata sandi.
type UserChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// BlockUserInput masukan pemblokiran pengguna.
type BlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput masukan pembukaan blokir pengguna.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
}
