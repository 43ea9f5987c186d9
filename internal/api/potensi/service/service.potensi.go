// Package potensisvc memuat service domain potensi.
package potensisvc

import (
	"fmt"

	basesvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/service"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/potensi/models"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
)

// WisataService memuat logika data destinasi wisata
type WisataService struct {
	*basesvc.BaseServiceMongoImpl[models.Wisata]
}

// NewWisataService membuat WisataService baru
func NewWisataService() (*WisataService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Wisata)
	if !exist {
		return nil, fmt.Errorf("failed to get wisata collection: %v", common.ErrNotFound)
	}
	return &WisataService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Wisata](collection),
	}, nil
}

// UmkmService memuat logika data UMKM
type UmkmService struct {
	*basesvc.BaseServiceMongoImpl[models.Umkm]
}

// NewUmkmService membuat UmkmService baru
func NewUmkmService() (*UmkmService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Umkm)
	if !exist {
		return nil, fmt.Errorf("failed to get umkm collection: %v", common.ErrNotFound)
	}
	return &UmkmService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Umkm](collection),
	}, nil
}

// KearifanLokalService memuat logika data kearifan lokal
type KearifanLokalService struct {
	*basesvc.BaseServiceMongoImpl[models.KearifanLokal]
}

// NewKearifanLokalService membuat KearifanLokalService baru
func NewKearifanLokalService() (*KearifanLokalService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.KearifanLokal)
	if !exist {
		return nil, fmt.Errorf("failed to get kearifan lokal collection: %v", common.ErrNotFound)
	}
	return &KearifanLokalService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.KearifanLokal](collection),
	}, nil
}
