package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type AuditLogGormRepository struct {
	crud crud[models.AuditLog]
}

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{crud: crud[models.AuditLog]{db: db}}
}

func (r *AuditLogGormRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return r.crud.create(ctx, entry)
}

func (r *AuditLogGormRepository) List(
	ctx context.Context,
	f audit.Filter,
	p pagination.Params,
) ([]models.AuditLog, int64, error) {

	return r.crud.list(ctx, p, func(q *gorm.DB) *gorm.DB {
		q = q.Where("barbershop_id = ?", f.BarbershopID)
		if f.Action != "" {
			q = q.Where("action = ?", f.Action)
		}
		if f.Entity != "" {
			q = q.Where("entity = ?", f.Entity)
		}
		return q
	})
}

var _ audit.Repository = (*AuditLogGormRepository)(nil)
