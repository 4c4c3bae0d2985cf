package repository

import (
	"context"

	"gorm.io/gorm"

	domainHair "github.com/BruksfildServices01/barbershop-api/internal/domain/hair"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type HairGormRepository struct {
	crud crud[models.Hair]
}

func NewHairGormRepository(db *gorm.DB) *HairGormRepository {
	return &HairGormRepository{crud: crud[models.Hair]{db: db}}
}

func (r *HairGormRepository) List(ctx context.Context, p pagination.Params) ([]models.Hair, int64, error) {
	return r.crud.list(ctx, p)
}

func (r *HairGormRepository) Get(ctx context.Context, id uint) (*models.Hair, error) {
	return r.crud.get(ctx, id)
}

func (r *HairGormRepository) Create(ctx context.Context, h *models.Hair) error {
	return r.crud.create(ctx, h)
}

func (r *HairGormRepository) Update(ctx context.Context, h *models.Hair) error {
	return r.crud.save(ctx, h)
}

func (r *HairGormRepository) Delete(ctx context.Context, id uint) error {
	return r.crud.delete(ctx, id)
}

var _ domainHair.Repository = (*HairGormRepository)(nil)
