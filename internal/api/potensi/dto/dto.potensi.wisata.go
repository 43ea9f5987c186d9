package potensidto

// WisataCreateInput masukan pembuatan destinasi wisata.
type WisataCreateInput struct {
	Nama           string   `json:"nama" validate:"required" maxLength:"150"`
	Deskripsi      string   `json:"deskripsi,omitempty"`
	GambarURL      string   `json:"gambarUrl,omitempty"`
	Rating         float64  `json:"rating" validate:"gte=0,lte=5"`
	Harga          string   `json:"harga,omitempty" maxLength:"100"`
	JamOperasional string   `json:"jamOperasional,omitempty" maxLength:"100"`
	Fasilitas      []string `json:"fasilitas,omitempty"`
	Kontak         string   `json:"kontak,omitempty" maxLength:"100"`
}

// Normalize membuang item fasilitas yang kosong
func (i *WisataCreateInput) Normalize() {
	i.Fasilitas = trimEmpty(i.Fasilitas)
}

// WisataUpdateInput masukan pembaruan destinasi wisata.
type WisataUpdateInput struct {
	Nama           string   `json:"nama,omitempty" maxLength:"150"`
	Deskripsi      string   `json:"deskripsi,omitempty"`
	GambarURL      string   `json:"gambarUrl,omitempty"`
	Rating         float64  `json:"rating,omitempty" validate:"gte=0,lte=5"`
	Harga          string   `json:"harga,omitempty" maxLength:"100"`
	JamOperasional string   `json:"jamOperasional,omitempty" maxLength:"100"`
	Fasilitas      []string `json:"fasilitas,omitempty"`
	Kontak         string   `json:"kontak,omitempty" maxLength:"100"`
}

// Normalize membuang item fasilitas yang kosong
func (i *WisataUpdateInput) Normalize() {
	i.Fasilitas = trimEmpty(i.Fasilitas)
}
