package barbershop

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domainShop "github.com/BruksfildServices01/barbershop-api/internal/domain/barbershop"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

// Delete removes a barbershop and everything that belongs to it.
type Delete struct {
	repo  domainShop.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domainShop.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, id uint) error {
	shop, err := uc.repo.Get(ctx, id)
	if err != nil {
		return usecase.NotFoundAs(err, ErrNotFound)
	}

	if err := uc.repo.Delete(ctx, shop.ID); err != nil {
		return usecase.NotFoundAs(err, ErrNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Action:       "barbershop_deleted",
		Entity:       "barbershop",
		EntityID:     &shop.ID,
		Metadata:     map[string]string{"slug": shop.Slug},
	})
	return nil
}
