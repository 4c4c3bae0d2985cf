package audit

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

// Filter narrows an audit listing. BarbershopID is always applied.
type Filter struct {
	BarbershopID uint
	Entity       string
	Action       string
}

type Repository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, f Filter, p pagination.Params) ([]models.AuditLog, int64, error)
}

type Logger struct {
	repo Repository
}

func New(repo Repository) *Logger {
	return &Logger{repo: repo}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		BarbershopID: ev.BarbershopID,
		Action:       ev.Action,
		Entity:       ev.Entity,
		EntityID:     ev.EntityID,
		Metadata:     metaJSON,
	}

	return l.repo.Create(ctx, &entry)
}
