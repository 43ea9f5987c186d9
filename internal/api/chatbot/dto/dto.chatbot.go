// Package chatbotdto memuat DTO domain chatbot.
package chatbotdto

// ChatInput masukan pesan pengunjung ke chatbot.
type ChatInput struct {
	Message string `json:"message" validate:"required" maxLength:"1000"`
}

// FaqCreateInput masukan pembuatan entri FAQ.
type FaqCreateInput struct {
	FaqID      int      `json:"faqId" validate:"required,gte=1"`
	Pertanyaan string   `json:"pertanyaan" validate:"required" maxLength:"500"`
	Jawaban    string   `json:"jawaban" validate:"required"`
	KataKunci  []string `json:"kataKunci,omitempty"`
}

// FaqUpdateInput masukan pembaruan entri FAQ.
type FaqUpdateInput struct {
	FaqID      int      `json:"faqId,omitempty" validate:"omitempty,gte=1"`
	Pertanyaan string   `json:"pertanyaan,omitempty" maxLength:"500"`
	Jawaban    string   `json:"jawaban,omitempty"`
	KataKunci  []string `json:"kataKunci,omitempty"`
}

// SuratCreateInput masukan pembuatan templat surat.
type SuratCreateInput struct {
	SuratID   int      `json:"suratId" validate:"required,gte=1"`
	Nama      string   `json:"nama" validate:"required" maxLength:"200"`
	Deskripsi string   `json:"deskripsi,omitempty" maxLength:"500"`
	Berkas    string   `json:"berkas" validate:"required" maxLength:"200"`
	KataKunci []string `json:"kataKunci,omitempty"`
}

// SuratUpdateInput masukan pembaruan templat surat.
type SuratUpdateInput struct {
	SuratID   int      `json:"suratId,omitempty" validate:"omitempty,gte=1"`
	Nama      string   `json:"nama,omitempty" maxLength:"200"`
	Deskripsi string   `json:"deskripsi,omitempty" maxLength:"500"`
	Berkas    string   `json:"berkas,omitempty" maxLength:"200"`
	KataKunci []string `json:"kataKunci,omitempty"`
}
