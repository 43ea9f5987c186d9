// Package pesansvc memuat service pesan kontak.
package pesansvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/service"
	pesandto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/pesan/dto"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/pesan/models"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
)

// PesanKontakService memuat logika pesan formulir kontak
type PesanKontakService struct {
	*basesvc.BaseServiceMongoImpl[models.PesanKontak]
}

// NewPesanKontakService membuat PesanKontakService baru
func NewPesanKontakService() (*PesanKontakService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PesanKontak)
	if !exist {
		return nil, fmt.Errorf("failed to get pesan kontak collection: %v", common.ErrNotFound)
	}
	return &PesanKontakService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.PesanKontak](collection),
	}, nil
}

// Kirim menyimpan pesan baru dari formulir kontak publik.
// Pesan selalu masuk dengan status belum dibaca; timestamp diisi server.
func (s *PesanKontakService) Kirim(ctx context.Context, input *pesandto.PesanKirimInput) (models.PesanKontak, error) {
	pesan := models.PesanKontak{
		Nama:    input.Nama,
		Email:   input.Email,
		Telepon: input.Telepon,
		Subjek:  input.Subjek,
		Isi:     input.Isi,
		IsRead:  false,
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, pesan)
}

// UnreadCount menghitung jumlah pesan yang belum dibaca
func (s *PesanKontakService) UnreadCount(ctx context.Context) (int64, error) {
	return s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"isRead": false})
}

// MarkRead menandai satu pesan sebagai sudah dibaca.
// Hanya isRead dan updatedAt yang berubah; isi pesan tidak tersentuh.
func (s *PesanKontakService) MarkRead(ctx context.Context, id primitive.ObjectID) (models.PesanKontak, error) {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"isRead": true},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}
