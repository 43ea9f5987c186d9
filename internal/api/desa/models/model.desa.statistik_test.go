package models

import "testing"

func TestZeroStatistikPenduduk_MapsInitialized(t *testing.T) {
	// Dokumen nol dikirim apa adanya ke client: seluruh map harus berupa
	// objek kosong, bukan null
	s := ZeroStatistikPenduduk()

	if s.Gender == nil {
		t.Error("Gender nil, harusnya map kosong")
	}
	if s.KelompokUsia == nil {
		t.Error("KelompokUsia nil, harusnya map kosong")
	}
	if s.Pendidikan == nil {
		t.Error("Pendidikan nil, harusnya map kosong")
	}
	if s.Pekerjaan == nil {
		t.Error("Pekerjaan nil, harusnya map kosong")
	}

	if s.TotalPenduduk != 0 || s.JumlahKK != 0 || s.Anak != 0 || s.Dewasa != 0 {
		t.Errorf("dokumen nol berisi angka bukan nol: %+v", s)
	}
}
