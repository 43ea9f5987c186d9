package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatistikPenduduk adalah dokumen tunggal berisi rekap kependudukan desa.
// Collection ini hanya berisi satu dokumen; endpoint baca mengembalikan
// dokumen bernilai nol bila belum pernah diisi.
type StatistikPenduduk struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TotalPenduduk  int                `json:"totalPenduduk" bson:"totalPenduduk"`
	JumlahKK       int                `json:"jumlahKK" bson:"jumlahKK"`
	Anak           int                `json:"anak" bson:"anak"`
	Dewasa         int                `json:"dewasa" bson:"dewasa"`
	Gender         map[string]int     `json:"gender" bson:"gender"`
	KelompokUsia   map[string]int     `json:"kelompokUsia" bson:"kelompokUsia"`
	Pendidikan     map[string]int     `json:"pendidikan" bson:"pendidikan"`
	Pekerjaan      map[string]int     `json:"pekerjaan" bson:"pekerjaan"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// ZeroStatistikPenduduk mengembalikan dokumen statistik bernilai nol
// dengan seluruh map terinisialisasi (bukan nil) agar JSON tetap objek.
func ZeroStatistikPenduduk() StatistikPenduduk {
	return StatistikPenduduk{
		Gender:       map[string]int{},
		KelompokUsia: map[string]int{},
		Pendidikan:   map[string]int{},
		Pekerjaan:    map[string]int{},
	}
}
