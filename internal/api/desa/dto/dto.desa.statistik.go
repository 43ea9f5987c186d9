package desadto

// StatistikPendudukUpsertInput masukan pembaruan dokumen statistik penduduk.
// Seluruh field dikirim utuh; dokumen lama ditimpa dengan nilai baru.
type StatistikPendudukUpsertInput struct {
	TotalPenduduk int            `json:"totalPenduduk" validate:"gte=0"`
	JumlahKK      int            `json:"jumlahKK" validate:"gte=0"`
	Anak          int            `json:"anak" validate:"gte=0"`
	Dewasa        int            `json:"dewasa" validate:"gte=0"`
	Gender        map[string]int `json:"gender,omitempty"`
	KelompokUsia  map[string]int `json:"kelompokUsia,omitempty"`
	Pendidikan    map[string]int `json:"pendidikan,omitempty"`
	Pekerjaan     map[string]int `json:"pekerjaan,omitempty"`
}
