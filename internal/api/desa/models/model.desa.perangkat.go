// Package models - model data domain desa (perangkat dan statistik penduduk).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PerangkatDesa merepresentasikan satu anggota struktur organisasi
// pemerintahan desa. Level menentukan tingkatan jabatan (semakin kecil
// semakin tinggi), Posisi menentukan urutan tampil dalam satu level.
type PerangkatDesa struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nama       string             `json:"nama" bson:"nama" index:"text"`
	Jabatan    string             `json:"jabatan" bson:"jabatan"`
	Nik        string             `json:"nik,omitempty" bson:"nik,omitempty"`
	FotoURL    string             `json:"fotoUrl,omitempty" bson:"fotoUrl,omitempty"`
	Deskripsi  string             `json:"deskripsi,omitempty" bson:"deskripsi,omitempty"`
	Pengalaman []string           `json:"pengalaman" bson:"pengalaman"`
	Pendidikan string             `json:"pendidikan,omitempty" bson:"pendidikan,omitempty"`
	Telepon    string             `json:"telepon,omitempty" bson:"telepon,omitempty"`
	Email      string             `json:"email,omitempty" bson:"email,omitempty"`
	Level      int                `json:"level" bson:"level" index:"single,order:1"`
	Posisi     int                `json:"posisi" bson:"posisi"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
