package potensidto

// UmkmCreateInput masukan pembuatan data UMKM.
type UmkmCreateInput struct {
	Nama           string   `json:"nama" validate:"required" maxLength:"150"`
	Deskripsi      string   `json:"deskripsi,omitempty"`
	GambarURL      string   `json:"gambarUrl,omitempty"`
	Rating         float64  `json:"rating" validate:"gte=0,lte=5"`
	Harga          string   `json:"harga,omitempty" maxLength:"100"`
	Kategori       string   `json:"kategori,omitempty" maxLength:"50"`
	Produk         []string `json:"produk,omitempty"`
	Kontak         string   `json:"kontak,omitempty" maxLength:"100"`
	TahunBerdiri   int      `json:"tahunBerdiri,omitempty" validate:"omitempty,gte=1900"`
	JumlahKaryawan int      `json:"jumlahKaryawan,omitempty" validate:"gte=0"`
	Latitude       float64  `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude      float64  `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Alamat         string   `json:"alamat,omitempty" maxLength:"300"`
}

// Normalize membuang item produk yang kosong
func (i *UmkmCreateInput) Normalize() {
	i.Produk = trimEmpty(i.Produk)
}

// UmkmUpdateInput masukan pembaruan data UMKM.
type UmkmUpdateInput struct {
	Nama           string   `json:"nama,omitempty" maxLength:"150"`
	Deskripsi      string   `json:"deskripsi,omitempty"`
	GambarURL      string   `json:"gambarUrl,omitempty"`
	Rating         float64  `json:"rating,omitempty" validate:"gte=0,lte=5"`
	Harga          string   `json:"harga,omitempty" maxLength:"100"`
	Kategori       string   `json:"kategori,omitempty" maxLength:"50"`
	Produk         []string `json:"produk,omitempty"`
	Kontak         string   `json:"kontak,omitempty" maxLength:"100"`
	TahunBerdiri   int      `json:"tahunBerdiri,omitempty" validate:"omitempty,gte=1900"`
	JumlahKaryawan int      `json:"jumlahKaryawan,omitempty" validate:"gte=0"`
	Latitude       float64  `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude      float64  `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Alamat         string   `json:"alamat,omitempty" maxLength:"300"`
}

// Normalize membuang item produk yang kosong
func (i *UmkmUpdateInput) Normalize() {
	i.Produk = trimEmpty(i.Produk)
}
