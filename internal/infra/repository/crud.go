package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

// crud implements the single-table operations shared by every resource.
type crud[T any] struct {
	db *gorm.DB
}

func (r crud[T]) list(
	ctx context.Context,
	p pagination.Params,
	scopes ...func(*gorm.DB) *gorm.DB,
) ([]T, int64, error) {

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(new(T)).Scopes(scopes...)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []T
	if err := base().
		Order("id ASC").
		Offset(p.Offset()).
		Limit(p.Limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r crud[T]) get(ctx context.Context, id uint) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r crud[T]) exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r crud[T]) create(ctx context.Context, item *T) error {
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

func (r crud[T]) save(ctx context.Context, item *T) error {
	return translate(r.db.WithContext(ctx).Save(item).Error)
}

func (r crud[T]) delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
