package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Galeri merepresentasikan satu foto pada galeri desa.
// Suka dan Dilihat dinaikkan atomik lewat endpoint like/view.
type Galeri struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Judul      string             `json:"judul" bson:"judul" index:"text"`
	Kategori   string             `json:"kategori,omitempty" bson:"kategori,omitempty" index:"single,order:1"`
	Tanggal    int64              `json:"tanggal" bson:"tanggal" index:"single,order:-1"`
	GambarURL  string             `json:"gambarUrl" bson:"gambarUrl"`
	Fotografer string             `json:"fotografer,omitempty" bson:"fotografer,omitempty"`
	Suka       int64              `json:"suka" bson:"suka"`
	Dilihat    int64              `json:"dilihat" bson:"dilihat"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
