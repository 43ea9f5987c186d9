package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status pelestarian kearifan lokal
const (
	KearifanStatusAktif        = "Aktif"             // Masih dipraktikkan warga
	KearifanStatusRevitalisasi = "Perlu Revitalisasi" // Butuh upaya pelestarian
)

// KearifanLokal merepresentasikan satu tradisi atau kearifan lokal desa.
// Ikon dan Warna berisi identifier tampilan yang dipetakan oleh frontend.
type KearifanLokal struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nama      string             `json:"nama" bson:"nama" index:"text"`
	Deskripsi string             `json:"deskripsi,omitempty" bson:"deskripsi,omitempty"`
	GambarURL string             `json:"gambarUrl,omitempty" bson:"gambarUrl,omitempty"`
	Kategori  string             `json:"kategori,omitempty" bson:"kategori,omitempty" index:"single,order:1"`
	Filosofi  string             `json:"filosofi,omitempty" bson:"filosofi,omitempty"`
	Praktik   []string           `json:"praktik" bson:"praktik"`
	Manfaat   []string           `json:"manfaat" bson:"manfaat"`
	Ikon      string             `json:"ikon,omitempty" bson:"ikon,omitempty"`
	Warna     string             `json:"warna,omitempty" bson:"warna,omitempty"`
	Status    string             `json:"status" bson:"status" default:"Aktif"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
