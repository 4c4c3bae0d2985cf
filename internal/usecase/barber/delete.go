package barber

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domainBarber "github.com/BruksfildServices01/barbershop-api/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

type Delete struct {
	repo  domainBarber.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domainBarber.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, id uint) error {
	b, err := uc.repo.Get(ctx, id)
	if err != nil {
		return usecase.NotFoundAs(err, ErrNotFound)
	}

	if err := uc.repo.Delete(ctx, b.ID); err != nil {
		return usecase.NotFoundAs(err, ErrNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: b.BarbershopID,
		Action:       "barber_deleted",
		Entity:       "barber",
		EntityID:     &b.ID,
	})
	return nil
}
