package hair

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type Repository interface {
	List(ctx context.Context, p pagination.Params) ([]models.Hair, int64, error)
	Get(ctx context.Context, id uint) (*models.Hair, error)
	Create(ctx context.Context, h *models.Hair) error
	Update(ctx context.Context, h *models.Hair) error
	Delete(ctx context.Context, id uint) error
}
