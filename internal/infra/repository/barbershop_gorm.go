package repository

import (
	"context"

	"gorm.io/gorm"

	domainShop "github.com/BruksfildServices01/barbershop-api/internal/domain/barbershop"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type BarbershopGormRepository struct {
	db   *gorm.DB
	crud crud[models.Barbershop]
}

func NewBarbershopGormRepository(db *gorm.DB) *BarbershopGormRepository {
	return &BarbershopGormRepository{db: db, crud: crud[models.Barbershop]{db: db}}
}

func (r *BarbershopGormRepository) List(
	ctx context.Context,
	p pagination.Params,
) ([]models.Barbershop, int64, error) {
	return r.crud.list(ctx, p)
}

func (r *BarbershopGormRepository) Get(ctx context.Context, id uint) (*models.Barbershop, error) {
	return r.crud.get(ctx, id)
}

func (r *BarbershopGormRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.crud.exists(ctx, id)
}

func (r *BarbershopGormRepository) FindBySlug(ctx context.Context, slug string) (*models.Barbershop, error) {
	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (r *BarbershopGormRepository) FindByEmailAndPhone(
	ctx context.Context,
	email string,
	phone string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = ? AND phone = ?", email, phone).
		Order("id ASC").
		First(&shop).Error; err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (r *BarbershopGormRepository) Create(ctx context.Context, shop *models.Barbershop) error {
	return r.crud.create(ctx, shop)
}

func (r *BarbershopGormRepository) Update(ctx context.Context, shop *models.Barbershop) error {
	return r.crud.save(ctx, shop)
}

func (r *BarbershopGormRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scheduleIDs := tx.Model(&models.Schedule{}).
			Select("id").
			Where("barbershop_id = ?", id)

		for _, child := range []any{&models.WeekPeriod{}, &models.CustomPeriod{}, &models.UnavailableDate{}} {
			if err := tx.Where("schedule_id IN (?)", scheduleIDs).Delete(child).Error; err != nil {
				return err
			}
		}

		for _, dep := range []any{&models.Schedule{}, &models.Barber{}, &models.Hair{}, &models.Review{}} {
			if err := tx.Where("barbershop_id = ?", id).Delete(dep).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&models.Barbershop{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err)
}

var _ domainShop.Repository = (*BarbershopGormRepository)(nil)
