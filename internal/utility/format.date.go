package utility

import (
	"fmt"
	"time"
)

// namaHari memetakan time.Weekday ke nama hari bahasa Indonesia
var namaHari = [...]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

// namaBulan memetakan time.Month ke nama bulan bahasa Indonesia
var namaBulan = [...]string{
	time.January:   "Januari",
	time.February:  "Februari",
	time.March:     "Maret",
	time.April:     "April",
	time.May:       "Mei",
	time.June:      "Juni",
	time.July:      "Juli",
	time.August:    "Agustus",
	time.September: "September",
	time.October:   "Oktober",
	time.November:  "November",
	time.December:  "Desember",
}

// TanggalIndonesia memformat waktu menjadi tanggal panjang bahasa Indonesia,
// contoh: "Senin, 1 September 2025". Format ini dipakai pada surat resmi.
func TanggalIndonesia(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", namaHari[t.Weekday()], t.Day(), namaBulan[t.Month()], t.Year())
}

// TanggalPendek memformat waktu menjadi "1 September 2025"
func TanggalPendek(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[t.Month()], t.Year())
}
