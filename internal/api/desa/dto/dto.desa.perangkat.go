// Package desadto memuat DTO domain desa.
package desadto

// PerangkatDesaCreateInput masukan pembuatan data perangkat desa.
type PerangkatDesaCreateInput struct {
	Nama       string   `json:"nama" validate:"required" maxLength:"100"`
	Jabatan    string   `json:"jabatan" validate:"required" maxLength:"100"`
	Nik        string   `json:"nik,omitempty" maxLength:"20"`
	FotoURL    string   `json:"fotoUrl,omitempty"`
	Deskripsi  string   `json:"deskripsi,omitempty"`
	Pengalaman []string `json:"pengalaman,omitempty"`
	Pendidikan string   `json:"pendidikan,omitempty" maxLength:"100"`
	Telepon    string   `json:"telepon,omitempty" maxLength:"20"`
	Email      string   `json:"email,omitempty" validate:"omitempty,email"`
	Level      int      `json:"level" validate:"gte=0"`
	Posisi     int      `json:"posisi" validate:"gte=0"`
}

// PerangkatDesaUpdateInput masukan pembaruan data perangkat desa.
type PerangkatDesaUpdateInput struct {
	Nama       string   `json:"nama,omitempty" maxLength:"100"`
	Jabatan    string   `json:"jabatan,omitempty" maxLength:"100"`
	Nik        string   `json:"nik,omitempty" maxLength:"20"`
	FotoURL    string   `json:"fotoUrl,omitempty"`
	Deskripsi  string   `json:"deskripsi,omitempty"`
	Pengalaman []string `json:"pengalaman,omitempty"`
	Pendidikan string   `json:"pendidikan,omitempty" maxLength:"100"`
	Telepon    string   `json:"telepon,omitempty" maxLength:"20"`
	Email      string   `json:"email,omitempty" validate:"omitempty,email"`
	Level      int      `json:"level,omitempty" validate:"gte=0"`
	Posisi     int      `json:"posisi,omitempty" validate:"gte=0"`
}
