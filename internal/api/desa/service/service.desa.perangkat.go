// Package desasvc memuat service domain desa.
package desasvc

import (
	"fmt"

	basesvc "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/base/service"
	models "github.com/mirzasnowy/desa-medalsari-sub000/internal/api/desa/models"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/common"
	"github.com/mirzasnowy/desa-medalsari-sub000/internal/global"
)

// PerangkatDesaService memuat logika data perangkat desa
type PerangkatDesaService struct {
	*basesvc.BaseServiceMongoImpl[models.PerangkatDesa]
}

// NewPerangkatDesaService membuat PerangkatDesaService baru
func NewPerangkatDesaService() (*PerangkatDesaService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PerangkatDesa)
	if !exist {
		return nil, fmt.Errorf("failed to get perangkat desa collection: %v", common.ErrNotFound)
	}
	return &PerangkatDesaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.PerangkatDesa](collection),
	}, nil
}
