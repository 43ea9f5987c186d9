// Package models - model pengguna (User) pada domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User mendefinisikan model pengguna (admin pengelola website desa).
// Token memuat token autentikasi terbaru; Tokens memuat daftar token,
// satu per perangkat (dibedakan dengan hwid).
type User struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password      string             `json:"-" bson:"password,omitempty"`
	Salt          string             `json:"-" bson:"salt,omitempty"`
	FirebaseUID   string             `json:"firebaseUid,omitempty" bson:"firebaseUid,omitempty" index:"unique,sparse"`
	EmailVerified bool               `json:"emailVerified" bson:"emailVerified"`
	AvatarURL     string             `json:"avatarUrl" bson:"avatarUrl"`
	Role          string             `json:"role" bson:"role" default:"admin"`
	Token         string             `json:"token" bson:"token"`
	Tokens        []Token            `json:"-" bson:"tokens"`
	IsBlock       bool               `json:"-" bson:"isBlock"`
	BlockNote     string             `json:"-" bson:"blockNote"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}

// Sanitize mengosongkan field sensitif sebelum user dikirim ke client
func (u *User) Sanitize() {
	u.Password = ""
	u.Salt = ""
	u.Tokens = nil
}
