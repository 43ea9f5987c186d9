// Package models - model pesan formulir kontak publik.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PesanKontak merepresentasikan satu pesan yang dikirim pengunjung
// lewat formulir kontak. IsRead dipakai panel admin untuk badge
// jumlah pesan belum dibaca.
type PesanKontak struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nama      string             `json:"nama" bson:"nama"`
	Email     string             `json:"email" bson:"email"`
	Telepon   string             `json:"telepon,omitempty" bson:"telepon,omitempty"`
	Subjek    string             `json:"subjek" bson:"subjek"`
	Isi       string             `json:"isi" bson:"isi"`
	IsRead    bool               `json:"isRead" bson:"isRead" index:"single,order:1"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
