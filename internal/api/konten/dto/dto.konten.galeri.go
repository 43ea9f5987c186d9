package kontendto

// GaleriCreateInput masukan pembuatan foto galeri.
type GaleriCreateInput struct {
	Judul      string `json:"judul" validate:"required" maxLength:"200"`
	Kategori   string `json:"kategori,omitempty" maxLength:"50"`
	Tanggal    int64  `json:"tanggal" validate:"required"`
	GambarURL  string `json:"gambarUrl" validate:"required"`
	Fotografer string `json:"fotografer,omitempty" maxLength:"100"`
}

// GaleriUpdateInput masukan pembaruan foto galeri.
type GaleriUpdateInput struct {
	Judul      string `json:"judul,omitempty" maxLength:"200"`
	Kategori   string `json:"kategori,omitempty" maxLength:"50"`
	Tanggal    int64  `json:"tanggal,omitempty"`
	GambarURL  string `json:"gambarUrl,omitempty"`
	Fotografer string `json:"fotografer,omitempty" maxLength:"100"`
}
