package review

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domainReview "github.com/BruksfildServices01/barbershop-api/internal/domain/review"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

type Delete struct {
	repo  domainReview.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domainReview.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, id uint) error {
	r, err := uc.repo.Get(ctx, id)
	if err != nil {
		return usecase.NotFoundAs(err, ErrNotFound)
	}

	if err := uc.repo.Delete(ctx, r.ID); err != nil {
		return usecase.NotFoundAs(err, ErrNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: r.BarbershopID,
		Action:       "review_deleted",
		Entity:       "review",
		EntityID:     &r.ID,
	})
	return nil
}
