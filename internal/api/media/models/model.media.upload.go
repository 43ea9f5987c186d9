// Package models - model buku besar unggahan gambar.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaUpload mencatat satu gambar yang diunggah ke layanan hosting.
// RefCollection dan RefID diisi saat gambar sudah dirujuk sebuah dokumen;
// baris tanpa rujukan akan disapu worker setelah melewati ambang usia.
// Compensated true berarti gambar sudah dihapus dari layanan hosting
// karena penulisan dokumen lanjutannya gagal.
type MediaUpload struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	URL           string             `json:"url" bson:"url"`
	DeleteURL     string             `json:"deleteUrl,omitempty" bson:"deleteUrl,omitempty"`
	FileName      string             `json:"fileName,omitempty" bson:"fileName,omitempty"`
	Size          int64              `json:"size" bson:"size"`
	RefCollection string             `json:"refCollection,omitempty" bson:"refCollection,omitempty" index:"single,order:1"`
	RefID         string             `json:"refId,omitempty" bson:"refId,omitempty"`
	Compensated   bool               `json:"compensated" bson:"compensated"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
