package desasvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/service"
	desadto "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/dto"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/models"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
)

// StatistikPendudukService memuat logika dokumen tunggal statistik penduduk
type StatistikPendudukService struct {
	*basesvc.BaseServiceMongoImpl[models.StatistikPenduduk]
}

// NewStatistikPendudukService membuat StatistikPendudukService baru
func NewStatistikPendudukService() (*StatistikPendudukService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.StatistikPenduduk)
	if !exist {
		return nil, fmt.Errorf("failed to get statistik penduduk collection: %v", common.ErrNotFound)
	}
	return &StatistikPendudukService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.StatistikPenduduk](collection),
	}, nil
}

// GetOrZero mengambil dokumen statistik. Bila collection masih kosong,
// dikembalikan dokumen bernilai nol tanpa error.
func (s *StatistikPendudukService) GetOrZero(ctx context.Context) (models.StatistikPenduduk, error) {
	doc, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.ZeroStatistikPenduduk(), nil
		}
		return models.StatistikPenduduk{}, err
	}
	if doc.Gender == nil {
		doc.Gender = map[string]int{}
	}
	if doc.KelompokUsia == nil {
		doc.KelompokUsia = map[string]int{}
	}
	if doc.Pendidikan == nil {
		doc.Pendidikan = map[string]int{}
	}
	if doc.Pekerjaan == nil {
		doc.Pekerjaan = map[string]int{}
	}
	return doc, nil
}

// Replace menimpa isi dokumen statistik dengan nilai baru (upsert).
// Filter kosong menjamin collection tetap berisi paling banyak satu dokumen.
func (s *StatistikPendudukService) Replace(ctx context.Context, input *desadto.StatistikPendudukUpsertInput) (models.StatistikPenduduk, error) {
	gender := input.Gender
	if gender == nil {
		gender = map[string]int{}
	}
	kelompokUsia := input.KelompokUsia
	if kelompokUsia == nil {
		kelompokUsia = map[string]int{}
	}
	pendidikan := input.Pendidikan
	if pendidikan == nil {
		pendidikan = map[string]int{}
	}
	pekerjaan := input.Pekerjaan
	if pekerjaan == nil {
		pekerjaan = map[string]int{}
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"totalPenduduk": input.TotalPenduduk,
			"jumlahKK":      input.JumlahKK,
			"anak":          input.Anak,
			"dewasa":        input.Dewasa,
			"gender":        gender,
			"kelompokUsia":  kelompokUsia,
			"pendidikan":    pendidikan,
			"pekerjaan":     pekerjaan,
		},
	}
	return s.BaseServiceMongoImpl.Upsert(ctx, bson.M{}, update)
}
