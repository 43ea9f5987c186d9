// Package pesandto memuat DTO domain pesan kontak.
package pesandto

// PesanKirimInput masukan formulir kontak publik.
type PesanKirimInput struct {
	Nama    string `json:"nama" validate:"required" maxLength:"100"`
	Email   string `json:"email" validate:"required,email"`
	Telepon string `json:"telepon,omitempty" maxLength:"20"`
	Subjek  string `json:"subjek" validate:"required" maxLength:"200"`
	Isi     string `json:"isi" validate:"required" maxLength:"5000"`
}

// PesanUpdateInput tidak dipakai: pesan tidak bisa diedit, hanya
// ditandai terbaca atau dihapus. Tipe ini ada untuk memenuhi parameter
// generik handler dasar.
type PesanUpdateInput struct{}
