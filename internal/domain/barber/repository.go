package barber

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type Repository interface {
	List(ctx context.Context, p pagination.Params) ([]models.Barber, int64, error)
	Get(ctx context.Context, id uint) (*models.Barber, error)
	FindByEmail(ctx context.Context, email string) (*models.Barber, error)
	Create(ctx context.Context, b *models.Barber) error
	Update(ctx context.Context, b *models.Barber) error
	Delete(ctx context.Context, id uint) error
}
