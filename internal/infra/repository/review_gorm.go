package repository

import (
	"context"

	"gorm.io/gorm"

	domainReview "github.com/BruksfildServices01/barbershop-api/internal/domain/review"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type ReviewGormRepository struct {
	crud crud[models.Review]
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{crud: crud[models.Review]{db: db}}
}

func (r *ReviewGormRepository) List(ctx context.Context, p pagination.Params) ([]models.Review, int64, error) {
	return r.crud.list(ctx, p)
}

func (r *ReviewGormRepository) Get(ctx context.Context, id uint) (*models.Review, error) {
	return r.crud.get(ctx, id)
}

func (r *ReviewGormRepository) Create(ctx context.Context, rv *models.Review) error {
	return r.crud.create(ctx, rv)
}

func (r *ReviewGormRepository) Update(ctx context.Context, rv *models.Review) error {
	return r.crud.save(ctx, rv)
}

func (r *ReviewGormRepository) Delete(ctx context.Context, id uint) error {
	return r.crud.delete(ctx, id)
}

var _ domainReview.Repository = (*ReviewGormRepository)(nil)
