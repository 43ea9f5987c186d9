// Package worker memuat worker latar belakang aplikasi.
package worker

import (
	"context"
	"time"

	mediasvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/media/service"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/logger"
)

// MediaSweepWorker menyapu unggahan gambar yatim: baris buku besar tanpa
// rujukan dokumen yang lebih tua dari ambang usia dihapus dari layanan
// hosting dan dari buku besar. Unggah dan penulisan dokumen adalah dua
// langkah terpisah, jadi unggahan yang langkah keduanya tidak pernah
// terjadi akan menumpuk tanpa worker ini.
type MediaSweepWorker struct {
	mediaService *mediasvc.MediaService
	interval     time.Duration // Jarak antar sapuan
	orphanAge    time.Duration // Usia minimum unggahan sebelum dianggap yatim
}

// NewMediaSweepWorker membuat MediaSweepWorker baru.
// Parameter:
//   - interval: jarak antar sapuan (minimal 1 menit)
//   - orphanAge: usia minimum unggahan tak dirujuk sebelum disapu
func NewMediaSweepWorker(interval time.Duration, orphanAge time.Duration) (*MediaSweepWorker, error) {
	mediaService, err := mediasvc.NewMediaService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = time.Hour
	}
	if orphanAge <= 0 {
		orphanAge = 24 * time.Hour
	}
	return &MediaSweepWorker{
		mediaService: mediaService,
		interval:     interval,
		orphanAge:    orphanAge,
	}, nil
}

// Start menjalankan worker dalam loop sampai context dibatalkan
func (w *MediaSweepWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"orphanAge": w.orphanAge.String(),
	}).Info("[MEDIA_SWEEP] Worker penyapu unggahan yatim dimulai")

	for {
		select {
		case <-ctx.Done():
			log.Info("[MEDIA_SWEEP] Worker penyapu unggahan yatim berhenti")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("[MEDIA_SWEEP] Panic saat menyapu, dilanjutkan pada sapuan berikutnya")
					}
				}()

				cutoff := time.Now().Add(-w.orphanAge)
				swept, err := w.mediaService.SweepOrphans(ctx, cutoff)
				if err != nil {
					log.WithError(err).Error("[MEDIA_SWEEP] Gagal menyapu unggahan yatim")
					return
				}
				if swept > 0 {
					log.WithFields(map[string]interface{}{
						"swept": swept,
					}).Info("[MEDIA_SWEEP] Unggahan yatim tersapu")
				}
			}()
		}
	}
}
