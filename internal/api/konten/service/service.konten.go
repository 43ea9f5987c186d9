// Package kontensvc memuat service domain konten.
package kontensvc

import (
	"fmt"

	basesvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/service"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/konten/models"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
)

// BeritaService memuat logika data artikel berita
type BeritaService struct {
	*basesvc.BaseServiceMongoImpl[models.Berita]
}

// NewBeritaService membuat BeritaService baru
func NewBeritaService() (*BeritaService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Berita)
	if !exist {
		return nil, fmt.Errorf("failed to get berita collection: %v", common.ErrNotFound)
	}
	return &BeritaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Berita](collection),
	}, nil
}

// GaleriService memuat logika data foto galeri
type GaleriService struct {
	*basesvc.BaseServiceMongoImpl[models.Galeri]
}

// NewGaleriService membuat GaleriService baru
func NewGaleriService() (*GaleriService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Galeri)
	if !exist {
		return nil, fmt.Errorf("failed to get galeri collection: %v", common.ErrNotFound)
	}
	return &GaleriService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Galeri](collection),
	}, nil
}
