// Package models - model data domain potensi (wisata, UMKM, kearifan lokal).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wisata merepresentasikan satu destinasi wisata desa.
type Wisata struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nama           string             `json:"nama" bson:"nama" index:"text"`
	Deskripsi      string             `json:"deskripsi,omitempty" bson:"deskripsi,omitempty"`
	GambarURL      string             `json:"gambarUrl,omitempty" bson:"gambarUrl,omitempty"`
	Rating         float64            `json:"rating" bson:"rating" index:"single,order:-1"`
	Harga          string             `json:"harga,omitempty" bson:"harga,omitempty"`
	JamOperasional string             `json:"jamOperasional,omitempty" bson:"jamOperasional,omitempty"`
	Fasilitas      []string           `json:"fasilitas" bson:"fasilitas"`
	Kontak         string             `json:"kontak,omitempty" bson:"kontak,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
