package schedule

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domain.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, id uint) error {
	s, err := uc.repo.Get(ctx, id)
	if err != nil {
		return usecase.NotFoundAs(err, ErrNotFound)
	}

	if err := uc.repo.Delete(ctx, s.ID); err != nil {
		return usecase.NotFoundAs(err, ErrNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: s.BarbershopID,
		Action:       "schedule_deleted",
		Entity:       "schedule",
		EntityID:     &s.ID,
	})
	return nil
}
