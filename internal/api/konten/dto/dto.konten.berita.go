// Package kontendto memuat DTO domain konten.
package kontendto

// BeritaCreateInput masukan pembuatan artikel berita.
type BeritaCreateInput struct {
	Judul     string `json:"judul" validate:"required" maxLength:"200"`
	Ringkasan string `json:"ringkasan,omitempty" maxLength:"500"`
	Isi       string `json:"isi" validate:"required"`
	GambarURL string `json:"gambarUrl,omitempty"`
	Kategori  string `json:"kategori,omitempty" maxLength:"50"`
	Penulis   string `json:"penulis,omitempty" maxLength:"100"`
	Tanggal   int64  `json:"tanggal" validate:"required"`
	Unggulan  bool   `json:"unggulan,omitempty"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=Published Draft"`
}

// BeritaUpdateInput masukan pembaruan artikel berita.
type BeritaUpdateInput struct {
	Judul     string `json:"judul,omitempty" maxLength:"200"`
	Ringkasan string `json:"ringkasan,omitempty" maxLength:"500"`
	Isi       string `json:"isi,omitempty"`
	GambarURL string `json:"gambarUrl,omitempty"`
	Kategori  string `json:"kategori,omitempty" maxLength:"50"`
	Penulis   string `json:"penulis,omitempty" maxLength:"100"`
	Tanggal   int64  `json:"tanggal,omitempty"`
	Unggulan  bool   `json:"unggulan,omitempty"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=Published Draft"`
}
