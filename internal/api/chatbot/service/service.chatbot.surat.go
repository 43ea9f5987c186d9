package chatbotsvc

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"time"

	docx "github.com/lukasjarosch/go-docx"
	"github.com/sirupsen/logrus"

	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/utility"
)

// RenderSurat mengisi templat surat bernomor suratID dan mengembalikan
// nama berkas beserta isi dokumen hasil pengisian.
//
// Placeholder yang diisi: {tanggal} (tanggal panjang Indonesia hari ini),
// {desa}, dan {kecamatan} dari konfigurasi server.
func (s *ChatbotService) RenderSurat(ctx context.Context, suratID int) (string, []byte, error) {
	tpl, err := s.SuratService.FindBySuratID(ctx, suratID)
	if err != nil {
		return "", nil, err
	}

	// filepath.Base mencegah path templat keluar dari direktori templat
	path := filepath.Join(global.MongoDB_ServerConfig.SuratTemplateDir, filepath.Base(tpl.Berkas))
	doc, err := docx.Open(path)
	if err != nil {
		logrus.WithFields(logrus.Fields{"surat_id": suratID, "path": path, "error": err.Error()}).Error("RenderSurat: berkas templat tidak bisa dibuka")
		return "", nil, common.ErrTemplateMissing
	}

	placeholders := docx.PlaceholderMap{
		"tanggal":   utility.TanggalIndonesia(time.Now()),
		"desa":      global.MongoDB_ServerConfig.NamaDesa,
		"kecamatan": global.MongoDB_ServerConfig.NamaKecamatan,
	}
	if err := doc.ReplaceAll(placeholders); err != nil {
		logrus.WithFields(logrus.Fields{"surat_id": suratID, "error": err.Error()}).Error("RenderSurat: gagal mengisi placeholder templat")
		return "", nil, common.ErrTemplateRender
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		logrus.WithFields(logrus.Fields{"surat_id": suratID, "error": err.Error()}).Error("RenderSurat: gagal menulis dokumen hasil")
		return "", nil, common.ErrTemplateRender
	}

	return suratFileName(tpl.Nama), buf.Bytes(), nil
}

// suratFileName membentuk nama berkas unduhan dari nama templat
func suratFileName(nama string) string {
	name := strings.TrimSpace(strings.ToLower(nama))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		name = "surat"
	}
	return name + ".docx"
}
