// Package models - model data chatbot: entri FAQ dan templat surat.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FaqEntry adalah satu entri tanya-jawab chatbot.
// FaqID adalah nomor urut yang dirujuk perintah `/faq <n>`.
type FaqEntry struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FaqID      int                `json:"faqId" bson:"faqId" index:"unique"`
	Pertanyaan string             `json:"pertanyaan" bson:"pertanyaan"`
	Jawaban    string             `json:"jawaban" bson:"jawaban"`
	KataKunci  []string           `json:"kataKunci" bson:"kataKunci"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// SuratTemplate adalah satu templat surat yang bisa diunduh lewat chatbot.
// SuratID dirujuk perintah `/surat <n>`; Berkas adalah nama file .docx
// relatif terhadap direktori templat surat.
type SuratTemplate struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SuratID   int                `json:"suratId" bson:"suratId" index:"unique"`
	Nama      string             `json:"nama" bson:"nama"`
	Deskripsi string             `json:"deskripsi,omitempty" bson:"deskripsi,omitempty"`
	Berkas    string             `json:"berkas" bson:"berkas"`
	KataKunci []string           `json:"kataKunci" bson:"kataKunci"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
