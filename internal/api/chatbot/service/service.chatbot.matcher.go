// Package chatbotsvc memuat service chatbot: matcher pesan, akses data
// FAQ/templat surat, dan pengisian templat .docx.
package chatbotsvc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/chatbot/models"
)

// Jenis balasan chatbot
const (
	ReplyTypeFaq      = "faq"      // Jawaban dari entri FAQ
	ReplyTypeSurat    = "surat"    // Tawaran unduh templat surat
	ReplyTypeMenu     = "menu"     // Menu atau balasan kanonik
	ReplyTypeFallback = "fallback" // Pesan tidak dikenali
)

// DefaultDelayMs adalah jeda ketik yang disarankan ke client (milidetik),
// meniru jeda agen live sebelum balasan ditampilkan.
const DefaultDelayMs = 500

// Reply adalah balasan chatbot untuk satu pesan pengunjung.
// SuratID hanya terisi pada balasan bertipe surat.
type Reply struct {
	Type             string `json:"type"`
	Text             string `json:"text"`
	SuratID          int    `json:"suratId,omitempty"`
	SuggestedDelayMs int    `json:"suggestedDelayMs"`
}

var (
	faqNumberRe   = regexp.MustCompile(`^/faq\s+(\d+)$`)
	suratNumberRe = regexp.MustCompile(`^/surat\s+(\d+)$`)
)

// Match mencocokkan satu pesan terhadap daftar FAQ dan templat surat.
// Fungsi ini murni: hasilnya hanya bergantung pada argumen. Urutan
// prioritas: perintah bernomor, perintah menu, kata kunci FAQ, kata
// kunci surat, lalu fallback.
func Match(message string, faqs []models.FaqEntry, templates []models.SuratTemplate) Reply {
	msg := strings.ToLower(strings.TrimSpace(message))

	// 1. Perintah bernomor: /faq <n> dan /surat <n>
	if m := faqNumberRe.FindStringSubmatch(msg); m != nil {
		n, _ := strconv.Atoi(m[1])
		for _, faq := range faqs {
			if faq.FaqID == n {
				return Reply{Type: ReplyTypeFaq, Text: faq.Jawaban, SuggestedDelayMs: DefaultDelayMs}
			}
		}
		return Reply{
			Type:             ReplyTypeFallback,
			Text:             fmt.Sprintf("FAQ nomor %d tidak ditemukan. Ketik /faq untuk melihat daftar pertanyaan.", n),
			SuggestedDelayMs: DefaultDelayMs,
		}
	}
	if m := suratNumberRe.FindStringSubmatch(msg); m != nil {
		n, _ := strconv.Atoi(m[1])
		for _, tpl := range templates {
			if tpl.SuratID == n {
				return suratReply(tpl)
			}
		}
		return Reply{
			Type:             ReplyTypeFallback,
			Text:             fmt.Sprintf("Surat nomor %d tidak ditemukan. Ketik /surat untuk melihat daftar surat.", n),
			SuggestedDelayMs: DefaultDelayMs,
		}
	}

	// 2. Perintah menu
	switch msg {
	case "/faq":
		return Reply{Type: ReplyTypeMenu, Text: buildFaqMenu(faqs), SuggestedDelayMs: DefaultDelayMs}
	case "/surat":
		return Reply{Type: ReplyTypeMenu, Text: buildSuratMenu(templates), SuggestedDelayMs: DefaultDelayMs}
	case "/kontak":
		return Reply{Type: ReplyTypeMenu, Text: kontakText, SuggestedDelayMs: DefaultDelayMs}
	case "/jam":
		return Reply{Type: ReplyTypeMenu, Text: jamText, SuggestedDelayMs: DefaultDelayMs}
	case "/help":
		return Reply{Type: ReplyTypeMenu, Text: helpText, SuggestedDelayMs: DefaultDelayMs}
	}

	// 3. Kata kunci FAQ: pertanyaan atau kata kunci muncul di pesan
	for _, faq := range faqs {
		if matchKeywords(msg, faq.Pertanyaan, faq.KataKunci) {
			return Reply{Type: ReplyTypeFaq, Text: faq.Jawaban, SuggestedDelayMs: DefaultDelayMs}
		}
	}

	// 4. Kata kunci templat surat
	for _, tpl := range templates {
		if matchKeywords(msg, tpl.Nama, tpl.KataKunci) {
			return suratReply(tpl)
		}
	}

	// 5. Fallback
	return Reply{Type: ReplyTypeFallback, Text: fallbackText, SuggestedDelayMs: DefaultDelayMs}
}

// matchKeywords memeriksa apakah pesan menyinggung sebuah entri:
// salah satu kata kunci muncul di pesan, atau pesan muncul utuh
// di dalam judul entri.
func matchKeywords(msg string, judul string, kataKunci []string) bool {
	if msg == "" {
		return false
	}
	for _, k := range kataKunci {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" && strings.Contains(msg, k) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(judul), msg)
}

func suratReply(tpl models.SuratTemplate) Reply {
	text := fmt.Sprintf("Saya menemukan templat surat \"%s\".", tpl.Nama)
	if tpl.Deskripsi != "" {
		text += " " + tpl.Deskripsi
	}
	text += " Tekan tombol unduh untuk mengambil berkasnya."
	return Reply{
		Type:             ReplyTypeSurat,
		Text:             text,
		SuratID:          tpl.SuratID,
		SuggestedDelayMs: DefaultDelayMs,
	}
}

func buildFaqMenu(faqs []models.FaqEntry) string {
	if len(faqs) == 0 {
		return "Belum ada daftar pertanyaan yang tersedia."
	}
	var b strings.Builder
	b.WriteString("Daftar pertanyaan yang sering diajukan:\n")
	for _, faq := range faqs {
		fmt.Fprintf(&b, "%d. %s\n", faq.FaqID, faq.Pertanyaan)
	}
	b.WriteString("Ketik /faq <nomor> untuk melihat jawabannya.")
	return b.String()
}

func buildSuratMenu(templates []models.SuratTemplate) string {
	if len(templates) == 0 {
		return "Belum ada templat surat yang tersedia."
	}
	var b strings.Builder
	b.WriteString("Daftar surat yang bisa dibuat:\n")
	for _, tpl := range templates {
		fmt.Fprintf(&b, "%d. %s\n", tpl.SuratID, tpl.Nama)
	}
	b.WriteString("Ketik /surat <nomor> untuk membuat suratnya.")
	return b.String()
}

const kontakText = "Kantor Desa dapat dihubungi lewat formulir kontak di halaman Kontak " +
	"pada website ini, atau datang langsung ke kantor desa pada jam pelayanan. " +
	"Ketik /jam untuk melihat jam pelayanan."

const jamText = "Jam pelayanan Kantor Desa:\n" +
	"Senin - Kamis: 08.00 - 15.00 WIB\n" +
	"Jumat: 08.00 - 11.00 WIB\n" +
	"Sabtu, Minggu, dan hari libur nasional: tutup."

const helpText = "Perintah yang tersedia:\n" +
	"/faq - daftar pertanyaan yang sering diajukan\n" +
	"/surat - daftar surat yang bisa dibuat\n" +
	"/kontak - cara menghubungi kantor desa\n" +
	"/jam - jam pelayanan\n" +
	"/help - menampilkan pesan ini\n" +
	"Anda juga bisa langsung mengetik pertanyaan Anda."

const fallbackText = "Maaf, saya belum memahami pesan Anda. " +
	"Ketik /help untuk melihat perintah yang tersedia, " +
	"/faq untuk daftar pertanyaan, atau /surat untuk daftar surat."
