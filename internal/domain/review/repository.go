package review

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type Repository interface {
	List(ctx context.Context, p pagination.Params) ([]models.Review, int64, error)
	Get(ctx context.Context, id uint) (*models.Review, error)
	Create(ctx context.Context, r *models.Review) error
	Update(ctx context.Context, r *models.Review) error
	Delete(ctx context.Context, id uint) error
}
