package hair

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domainHair "github.com/BruksfildServices01/barbershop-api/internal/domain/hair"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

type Delete struct {
	repo  domainHair.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domainHair.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, id uint) error {
	h, err := uc.repo.Get(ctx, id)
	if err != nil {
		return usecase.NotFoundAs(err, ErrNotFound)
	}

	if err := uc.repo.Delete(ctx, h.ID); err != nil {
		return usecase.NotFoundAs(err, ErrNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: h.BarbershopID,
		Action:       "hair_deleted",
		Entity:       "hair",
		EntityID:     &h.ID,
	})
	return nil
}
