// Package chatbotsvc - Test matcher pesan chatbot.
package chatbotsvc

import (
	"strings"
	"testing"

	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/models"
)

func sampleFaqs() []models.FaqEntry {
	return []models.FaqEntry{
		{FaqID: 1, Pertanyaan: "Bagaimana cara membuat surat pengantar KTP?", Jawaban: "Datang ke kantor desa dengan membawa KK.", KataKunci: []string{"ktp", "pengantar ktp"}},
		{FaqID: 2, Pertanyaan: "Kapan jam pelayanan kantor desa?", Jawaban: "Senin - Kamis pukul 08.00 - 15.00 WIB.", KataKunci: []string{"jam", "buka"}},
	}
}

func sampleTemplates() []models.SuratTemplate {
	return []models.SuratTemplate{
		{SuratID: 1, Nama: "Surat Keterangan Domisili", Deskripsi: "Keterangan bertempat tinggal di wilayah desa.", Berkas: "surat-keterangan-domisili.docx", KataKunci: []string{"domisili"}},
		{SuratID: 2, Nama: "Surat Keterangan Usaha", Berkas: "surat-keterangan-usaha.docx", KataKunci: []string{"usaha", "sku"}},
	}
}

func TestMatch_FaqNumber(t *testing.T) {
	r := Match("/faq 2", sampleFaqs(), nil)
	if r.Type != ReplyTypeFaq {
		t.Fatalf("tipe balasan = %q, harusnya %q", r.Type, ReplyTypeFaq)
	}
	if r.Text != sampleFaqs()[1].Jawaban {
		t.Errorf("teks balasan = %q, harusnya jawaban FAQ nomor 2", r.Text)
	}
	if r.SuggestedDelayMs != DefaultDelayMs {
		t.Errorf("SuggestedDelayMs = %d, harusnya %d", r.SuggestedDelayMs, DefaultDelayMs)
	}
}

func TestMatch_FaqNumberOutOfRange(t *testing.T) {
	// Nomor di luar daftar harus dibalas fallback, bukan error
	r := Match("/faq 99", sampleFaqs(), nil)
	if r.Type != ReplyTypeFallback {
		t.Fatalf("tipe balasan = %q, harusnya %q", r.Type, ReplyTypeFallback)
	}
	if !strings.Contains(r.Text, "99") {
		t.Errorf("teks fallback tidak menyebut nomor yang diminta: %q", r.Text)
	}
}

func TestMatch_SuratNumber(t *testing.T) {
	r := Match("/surat 1", nil, sampleTemplates())
	if r.Type != ReplyTypeSurat {
		t.Fatalf("tipe balasan = %q, harusnya %q", r.Type, ReplyTypeSurat)
	}
	if r.SuratID != 1 {
		t.Errorf("SuratID = %d, harusnya 1", r.SuratID)
	}
	if !strings.Contains(r.Text, "Surat Keterangan Domisili") {
		t.Errorf("teks balasan tidak menyebut nama surat: %q", r.Text)
	}
	if !strings.Contains(r.Text, "Keterangan bertempat tinggal") {
		t.Errorf("teks balasan tidak memuat deskripsi surat: %q", r.Text)
	}
}

func TestMatch_SuratNumberOutOfRange(t *testing.T) {
	r := Match("/surat 7", nil, sampleTemplates())
	if r.Type != ReplyTypeFallback {
		t.Fatalf("tipe balasan = %q, harusnya %q", r.Type, ReplyTypeFallback)
	}
	if r.SuratID != 0 {
		t.Errorf("SuratID pada fallback = %d, harusnya 0", r.SuratID)
	}
}

func TestMatch_FaqMenu(t *testing.T) {
	r := Match("/faq", sampleFaqs(), nil)
	if r.Type != ReplyTypeMenu {
		t.Fatalf("tipe balasan = %q, harusnya %q", r.Type, ReplyTypeMenu)
	}
	for _, faq := range sampleFaqs() {
		if !strings.Contains(r.Text, faq.Pertanyaan) {
			t.Errorf("menu FAQ tidak memuat pertanyaan %d: %q", faq.FaqID, r.Text)
		}
	}
}

func TestMatch_FaqMenuEmpty(t *testing.T) {
	r := Match("/faq", nil, nil)
	if r.Type != ReplyTypeMenu {
		t.Fatalf("tipe balasan = %q, harusnya %q", r.Type, ReplyTypeMenu)
	}
	if !strings.Contains(r.Text, "Belum ada") {
		t.Errorf("menu FAQ kosong harus menjelaskan belum ada daftar: %q", r.Text)
	}
}

func TestMatch_SuratMenu(t *testing.T) {
	r := Match("/surat", nil, sampleTemplates())
	if r.Type != ReplyTypeMenu {
		t.Fatalf("tipe balasan = %q, harusnya %q", r.Type, ReplyTypeMenu)
	}
	if !strings.Contains(r.Text, "1. Surat Keterangan Domisili") {
		t.Errorf("menu surat tidak memuat daftar bernomor: %q", r.Text)
	}
}

func TestMatch_CannedMenus(t *testing.T) {
	for _, cmd := range []string{"/kontak", "/jam", "/help"} {
		r := Match(cmd, nil, nil)
		if r.Type != ReplyTypeMenu {
			t.Errorf("Match(%q) tipe = %q, harusnya %q", cmd, r.Type, ReplyTypeMenu)
		}
		if r.Text == "" {
			t.Errorf("Match(%q) teks kosong", cmd)
		}
	}
}

func TestMatch_FaqKeyword(t *testing.T) {
	// Kata kunci FAQ diperiksa sebelum kata kunci surat
	r := Match("saya mau urus KTP dong", sampleFaqs(), sampleTemplates())
	if r.Type != ReplyTypeFaq {
		t.Fatalf("tipe balasan = %q, harusnya %q", r.Type, ReplyTypeFaq)
	}
	if r.Text != sampleFaqs()[0].Jawaban {
		t.Errorf("teks balasan = %q, harusnya jawaban FAQ pertama", r.Text)
	}
}

func TestMatch_SuratKeyword(t *testing.T) {
	r := Match("butuh surat keterangan usaha untuk pinjaman", nil, sampleTemplates())
	if r.Type != ReplyTypeSurat {
		t.Fatalf("tipe balasan = %q, harusnya %q", r.Type, ReplyTypeSurat)
	}
	if r.SuratID != 2 {
		t.Errorf("SuratID = %d, harusnya 2", r.SuratID)
	}
}

func TestMatch_MessageInsideQuestion(t *testing.T) {
	// Pesan pendek yang muncul utuh di dalam pertanyaan juga cocok
	r := Match("jam pelayanan", sampleFaqs(), nil)
	if r.Type != ReplyTypeFaq {
		t.Fatalf("tipe balasan = %q, harusnya %q", r.Type, ReplyTypeFaq)
	}
}

func TestMatch_Fallback(t *testing.T) {
	r := Match("xyz tidak nyambung sama sekali", sampleFaqs(), sampleTemplates())
	if r.Type != ReplyTypeFallback {
		t.Fatalf("tipe balasan = %q, harusnya %q", r.Type, ReplyTypeFallback)
	}
}

func TestMatch_EmptyMessage(t *testing.T) {
	// Pesan kosong tidak boleh cocok dengan entri mana pun
	r := Match("   ", sampleFaqs(), sampleTemplates())
	if r.Type != ReplyTypeFallback {
		t.Fatalf("tipe balasan = %q, harusnya %q", r.Type, ReplyTypeFallback)
	}
}

func TestMatch_Pure(t *testing.T) {
	// Dua panggilan dengan argumen sama harus menghasilkan balasan sama
	faqs := sampleFaqs()
	templates := sampleTemplates()
	a := Match("/faq 1", faqs, templates)
	b := Match("/faq 1", faqs, templates)
	if a != b {
		t.Errorf("Match tidak deterministik: %+v vs %+v", a, b)
	}
}

func TestSuratFileName(t *testing.T) {
	cases := []struct {
		nama string
		want string
	}{
		{"Surat Pengantar KTP", "surat-pengantar-ktp.docx"},
		{"Surat Keterangan Tidak Mampu", "surat-keterangan-tidak-mampu.docx"},
		{"SKTM", "sktm.docx"},
	}
	for _, c := range cases {
		if got := suratFileName(c.nama); got != c.want {
			t.Errorf("suratFileName(%q) = %q, harusnya %q", c.nama, got, c.want)
		}
	}
}
