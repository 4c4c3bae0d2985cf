package barbershop

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type Repository interface {
	List(ctx context.Context, p pagination.Params) ([]models.Barbershop, int64, error)
	Get(ctx context.Context, id uint) (*models.Barbershop, error)
	Exists(ctx context.Context, id uint) (bool, error)

	FindBySlug(ctx context.Context, slug string) (*models.Barbershop, error)
	FindByEmailAndPhone(ctx context.Context, email, phone string) (*models.Barbershop, error)

	Create(ctx context.Context, shop *models.Barbershop) error
	Update(ctx context.Context, shop *models.Barbershop) error

	// Delete removes the shop together with its barbers, services, reviews
	// and schedules.
	Delete(ctx context.Context, id uint) error
}
