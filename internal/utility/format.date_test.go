package utility

import (
	"testing"
	"time"
)

func TestTanggalIndonesia(t *testing.T) {
	// 17 Agustus 2025 jatuh pada hari Minggu
	waktu := time.Date(2025, time.August, 17, 10, 0, 0, 0, time.UTC)
	got := TanggalIndonesia(waktu)
	want := "Minggu, 17 Agustus 2025"
	if got != want {
		t.Errorf("TanggalIndonesia = %q, harusnya %q", got, want)
	}
}

func TestTanggalPendek(t *testing.T) {
	waktu := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	got := TanggalPendek(waktu)
	want := "1 Januari 2026"
	if got != want {
		t.Errorf("TanggalPendek = %q, harusnya %q", got, want)
	}
}
