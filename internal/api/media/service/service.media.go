// Package mediasvc memuat service unggahan gambar ke layanan hosting
// eksternal beserta buku besarnya.
package mediasvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/service"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/media/models"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
)

// uploadTimeout membatasi lama satu request ke layanan hosting gambar
const uploadTimeout = 30 * time.Second

// MediaService memuat logika unggah gambar dan buku besar unggahan
type MediaService struct {
	*basesvc.BaseServiceMongoImpl[models.MediaUpload]
	client *fasthttp.Client
}

// NewMediaService membuat MediaService baru
func NewMediaService() (*MediaService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MediaUploads)
	if !exist {
		return nil, fmt.Errorf("failed to get media uploads collection: %v", common.ErrNotFound)
	}
	return &MediaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.MediaUpload](collection),
		client:               &fasthttp.Client{},
	}, nil
}

// hostResponse adalah bagian respons layanan hosting yang dipakai
type hostResponse struct {
	Data struct {
		URL       string `json:"url"`
		DeleteURL string `json:"delete_url"`
	} `json:"data"`
	Success bool `json:"success"`
}

// Upload meneruskan satu berkas gambar ke layanan hosting memakai API key
// milik server, lalu mencatatnya di buku besar unggahan.
// Kunci API tidak pernah dikirim ke client.
func (s *MediaService) Upload(ctx context.Context, fileName string, data []byte) (models.MediaUpload, error) {
	var zero models.MediaUpload

	cfg := global.MongoDB_ServerConfig
	if cfg.ImageHostAPIKey == "" {
		return zero, common.NewError(common.ErrCodeMediaUpload, "Layanan hosting gambar belum dikonfigurasi", common.StatusInternalServerError, nil)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", fileName)
	if err != nil {
		return zero, common.NewError(common.ErrCodeMediaUpload, "Gagal menyiapkan data unggahan", common.StatusInternalServerError, err)
	}
	if _, err := part.Write(data); err != nil {
		return zero, common.NewError(common.ErrCodeMediaUpload, "Gagal menyiapkan data unggahan", common.StatusInternalServerError, err)
	}
	if err := writer.Close(); err != nil {
		return zero, common.NewError(common.ErrCodeMediaUpload, "Gagal menyiapkan data unggahan", common.StatusInternalServerError, err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(cfg.ImageHostUploadURL + "?key=" + cfg.ImageHostAPIKey)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(writer.FormDataContentType())
	req.SetBody(body.Bytes())

	if err := s.client.DoTimeout(req, resp, uploadTimeout); err != nil {
		logrus.WithError(err).Error("Upload: request ke layanan hosting gambar gagal")
		return zero, common.ErrUploadFailed
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		logrus.WithFields(logrus.Fields{"status": resp.StatusCode()}).Error("Upload: layanan hosting gambar menolak unggahan")
		return zero, common.ErrUploadFailed
	}

	var parsed hostResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil || !parsed.Success || parsed.Data.URL == "" {
		logrus.WithError(err).Error("Upload: respons layanan hosting gambar tidak bisa dibaca")
		return zero, common.ErrUploadFailed
	}

	ledger := models.MediaUpload{
		URL:       parsed.Data.URL,
		DeleteURL: parsed.Data.DeleteURL,
		FileName:  fileName,
		Size:      int64(len(data)),
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, ledger)
}

// AttachRef menandai sebuah unggahan sudah dirujuk oleh dokumen tertentu
// supaya tidak ikut tersapu worker pembersih.
func (s *MediaService) AttachRef(ctx context.Context, uploadID primitive.ObjectID, refCollection string, refID string) (models.MediaUpload, error) {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"refCollection": refCollection,
			"refId":         refID,
		},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, uploadID, update)
}

// Compensate menghapus gambar dari layanan hosting setelah penulisan
// dokumen lanjutannya gagal, lalu menandai baris buku besar sebagai
// terkompensasi. Unggah dan tulis dokumen adalah dua langkah terpisah;
// langkah ini mengembalikan keadaan bila langkah kedua gagal.
func (s *MediaService) Compensate(ctx context.Context, uploadID primitive.ObjectID) error {
	upload, err := s.BaseServiceMongoImpl.FindOneById(ctx, uploadID)
	if err != nil {
		return err
	}

	if upload.DeleteURL != "" {
		if err := s.deleteFromHost(upload.DeleteURL); err != nil {
			// Kegagalan hapus di sisi host tidak menggagalkan kompensasi;
			// worker pembersih masih bisa mencoba lagi nanti
			logrus.WithFields(logrus.Fields{"upload_id": uploadID.Hex(), "error": err.Error()}).Warn("Compensate: gagal menghapus gambar di layanan hosting")
		}
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"compensated": true},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, uploadID, update)
	return err
}

// deleteFromHost memanggil endpoint hapus milik layanan hosting
func (s *MediaService) deleteFromHost(deleteURL string) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(deleteURL)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := s.client.DoTimeout(req, resp, uploadTimeout); err != nil {
		return err
	}
	if resp.StatusCode() >= fasthttp.StatusBadRequest {
		return fmt.Errorf("layanan hosting mengembalikan status %d", resp.StatusCode())
	}
	return nil
}

// FindOrphans mengambil unggahan tanpa rujukan yang lebih tua dari
// ambang usia dan belum terkompensasi. Dipakai worker pembersih.
func (s *MediaService) FindOrphans(ctx context.Context, olderThan time.Time) ([]models.MediaUpload, error) {
	filter := bson.M{
		"refCollection": bson.M{"$exists": false},
		"compensated":   false,
		"createdAt":     bson.M{"$lt": olderThan.UnixMilli()},
	}
	return s.BaseServiceMongoImpl.Find(ctx, filter, nil)
}

// SweepOrphans menghapus unggahan yatim dari layanan hosting dan buku
// besar. Mengembalikan jumlah unggahan yang berhasil disapu.
func (s *MediaService) SweepOrphans(ctx context.Context, olderThan time.Time) (int, error) {
	orphans, err := s.FindOrphans(ctx, olderThan)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, orphan := range orphans {
		if orphan.DeleteURL != "" {
			if err := s.deleteFromHost(orphan.DeleteURL); err != nil {
				logrus.WithFields(logrus.Fields{"upload_id": orphan.ID.Hex(), "error": err.Error()}).Warn("SweepOrphans: gagal menghapus gambar di layanan hosting")
				continue
			}
		}
		if err := s.BaseServiceMongoImpl.DeleteById(ctx, orphan.ID); err != nil {
			logrus.WithFields(logrus.Fields{"upload_id": orphan.ID.Hex(), "error": err.Error()}).Warn("SweepOrphans: gagal menghapus baris buku besar")
			continue
		}
		swept++
	}
	return swept, nil
}
