package potensidto

// KearifanLokalCreateInput masukan pembuatan data kearifan lokal.
type KearifanLokalCreateInput struct {
	Nama      string   `json:"nama" validate:"required" maxLength:"150"`
	Deskripsi string   `json:"deskripsi,omitempty"`
	GambarURL string   `json:"gambarUrl,omitempty"`
	Kategori  string   `json:"kategori,omitempty" maxLength:"50"`
	Filosofi  string   `json:"filosofi,omitempty"`
	Praktik   []string `json:"praktik,omitempty"`
	Manfaat   []string `json:"manfaat,omitempty"`
	Ikon      string   `json:"ikon,omitempty" maxLength:"50"`
	Warna     string   `json:"warna,omitempty" maxLength:"50"`
	Status    string   `json:"status,omitempty" validate:"omitempty,oneof=Aktif 'Perlu Revitalisasi'"`
}

// Normalize membuang item praktik dan manfaat yang kosong
func (i *KearifanLokalCreateInput) Normalize() {
	i.Praktik = trimEmpty(i.Praktik)
	i.Manfaat = trimEmpty(i.Manfaat)
}

// KearifanLokalUpdateInput masukan pembaruan data kearifan lokal.
type KearifanLokalUpdateInput struct {
	Nama      string   `json:"nama,omitempty" maxLength:"150"`
	Deskripsi string   `json:"deskripsi,omitempty"`
	GambarURL string   `json:"gambarUrl,omitempty"`
	Kategori  string   `json:"kategori,omitempty" maxLength:"50"`
	Filosofi  string   `json:"filosofi,omitempty"`
	Praktik   []string `json:"praktik,omitempty"`
	Manfaat   []string `json:"manfaat,omitempty"`
	Ikon      string   `json:"ikon,omitempty" maxLength:"50"`
	Warna     string   `json:"warna,omitempty" maxLength:"50"`
	Status    string   `json:"status,omitempty" validate:"omitempty,oneof=Aktif 'Perlu Revitalisasi'"`
}

// Normalize membuang item praktik dan manfaat yang kosong
func (i *KearifanLokalUpdateInput) Normalize() {
	i.Praktik = trimEmpty(i.Praktik)
	i.Manfaat = trimEmpty(i.Manfaat)
}
