package repository

import (
	"context"

	"gorm.io/gorm"

	domainBarber "github.com/BruksfildServices01/barbershop-api/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type BarberGormRepository struct {
	db   *gorm.DB
	crud crud[models.Barber]
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db, crud: crud[models.Barber]{db: db}}
}

func (r *BarberGormRepository) List(ctx context.Context, p pagination.Params) ([]models.Barber, int64, error) {
	return r.crud.list(ctx, p)
}

func (r *BarberGormRepository) Get(ctx context.Context, id uint) (*models.Barber, error) {
	return r.crud.get(ctx, id)
}

func (r *BarberGormRepository) FindByEmail(ctx context.Context, email string) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&b).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BarberGormRepository) Create(ctx context.Context, b *models.Barber) error {
	return r.crud.create(ctx, b)
}

func (r *BarberGormRepository) Update(ctx context.Context, b *models.Barber) error {
	return r.crud.save(ctx, b)
}

func (r *BarberGormRepository) Delete(ctx context.Context, id uint) error {
	return r.crud.delete(ctx, id)
}

var _ domainBarber.Repository = (*BarberGormRepository)(nil)
