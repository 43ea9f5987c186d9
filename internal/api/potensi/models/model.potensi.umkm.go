package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Umkm merepresentasikan satu usaha mikro/kecil/menengah di desa.
// Latitude dan Longitude dipakai frontend untuk menampilkan peta lokasi.
type Umkm struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nama           string             `json:"nama" bson:"nama" index:"text"`
	Deskripsi      string             `json:"deskripsi,omitempty" bson:"deskripsi,omitempty"`
	GambarURL      string             `json:"gambarUrl,omitempty" bson:"gambarUrl,omitempty"`
	Rating         float64            `json:"rating" bson:"rating"`
	Harga          string             `json:"harga,omitempty" bson:"harga,omitempty"`
	Kategori       string             `json:"kategori,omitempty" bson:"kategori,omitempty" index:"single,order:1"`
	Produk         []string           `json:"produk" bson:"produk"`
	Kontak         string             `json:"kontak,omitempty" bson:"kontak,omitempty"`
	TahunBerdiri   int                `json:"tahunBerdiri,omitempty" bson:"tahunBerdiri,omitempty"`
	JumlahKaryawan int                `json:"jumlahKaryawan,omitempty" bson:"jumlahKaryawan,omitempty"`
	Latitude       float64            `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude      float64            `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Alamat         string             `json:"alamat,omitempty" bson:"alamat,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
