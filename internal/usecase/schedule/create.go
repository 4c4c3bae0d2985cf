package schedule

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

type CreateInput struct {
	BarbershopID uint
	Variant      domain.Variant
}

type Create struct {
	repo  domain.Repository
	shops usecase.ShopChecker
	audit *audit.Dispatcher
}

func NewCreate(
	repo domain.Repository,
	shops usecase.ShopChecker,
	audit *audit.Dispatcher,
) *Create {
	return &Create{repo: repo, shops: shops, audit: audit}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*domain.Schedule, error) {
	if err := domain.Validate(in.Variant); err != nil {
		return nil, err
	}
	if err := usecase.RequireShop(ctx, uc.shops, in.BarbershopID); err != nil {
		return nil, err
	}

	s := domain.Schedule{
		BarbershopID: in.BarbershopID,
		Variant:      in.Variant,
	}
	if err := uc.repo.Create(ctx, &s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: s.BarbershopID,
		Action:       "schedule_created",
		Entity:       "schedule",
		EntityID:     &s.ID,
		Metadata:     map[string]string{"model": string(s.Model())},
	})

	return &s, nil
}
