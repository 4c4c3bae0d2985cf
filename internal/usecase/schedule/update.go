package schedule

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

// UpdateInput moves a schedule to another shop and/or replaces its periods.
// Model, when set, must equal the stored model. A nil Variant keeps the
// current rows.
type UpdateInput struct {
	BarbershopID *uint
	Model        *domain.Model
	Variant      domain.Variant
}

type Update struct {
	repo  domain.Repository
	shops usecase.ShopChecker
	audit *audit.Dispatcher
}

func NewUpdate(
	repo domain.Repository,
	shops usecase.ShopChecker,
	audit *audit.Dispatcher,
) *Update {
	return &Update{repo: repo, shops: shops, audit: audit}
}

func (uc *Update) Execute(ctx context.Context, id uint, in UpdateInput) (*domain.Schedule, error) {
	s, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, usecase.NotFoundAs(err, ErrNotFound)
	}

	if in.Model != nil && *in.Model != s.Model() {
		return nil, ErrModelImmutable
	}
	if in.Variant != nil {
		if in.Variant.Model() != s.Model() {
			return nil, ErrModelImmutable
		}
		if err := domain.Validate(in.Variant); err != nil {
			return nil, err
		}
	}

	if in.BarbershopID != nil && *in.BarbershopID != s.BarbershopID {
		if err := usecase.RequireShop(ctx, uc.shops, *in.BarbershopID); err != nil {
			return nil, err
		}
		s.BarbershopID = *in.BarbershopID
	}

	if err := uc.repo.Update(ctx, s, in.Variant); err != nil {
		return nil, usecase.NotFoundAs(err, ErrNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: s.BarbershopID,
		Action:       "schedule_updated",
		Entity:       "schedule",
		EntityID:     &s.ID,
		Metadata:     map[string]bool{"periodsReplaced": in.Variant != nil},
	})

	return s, nil
}
