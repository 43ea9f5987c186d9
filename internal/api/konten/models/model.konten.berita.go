// Package models - model data domain konten (berita dan galeri).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status publikasi berita
const (
	BeritaStatusPublished = "Published" // Tampil di website publik
	BeritaStatusDraft     = "Draft"     // Hanya terlihat di panel admin
)

// Berita merepresentasikan satu artikel berita desa.
// Tanggal memakai Unix milli; Dilihat dinaikkan atomik lewat endpoint view.
type Berita struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Judul     string             `json:"judul" bson:"judul" index:"text"`
	Ringkasan string             `json:"ringkasan,omitempty" bson:"ringkasan,omitempty"`
	Isi       string             `json:"isi" bson:"isi"`
	GambarURL string             `json:"gambarUrl,omitempty" bson:"gambarUrl,omitempty"`
	Kategori  string             `json:"kategori,omitempty" bson:"kategori,omitempty" index:"single,order:1"`
	Penulis   string             `json:"penulis,omitempty" bson:"penulis,omitempty"`
	Tanggal   int64              `json:"tanggal" bson:"tanggal" index:"single,order:-1"`
	Unggulan  bool               `json:"unggulan" bson:"unggulan"`
	Status    string             `json:"status" bson:"status" default:"Draft" index:"single,order:1"`
	Dilihat   int64              `json:"dilihat" bson:"dilihat"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
