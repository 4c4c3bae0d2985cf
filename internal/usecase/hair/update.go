package hair

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domainHair "github.com/BruksfildServices01/barbershop-api/internal/domain/hair"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

type UpdateInput struct {
	BarbershopID *uint
	Name         *string
	Price        *decimal.Decimal
	PhotoURL     *string
}

type Update struct {
	repo  domainHair.Repository
	shops usecase.ShopChecker
	audit *audit.Dispatcher
}

func NewUpdate(
	repo domainHair.Repository,
	shops usecase.ShopChecker,
	audit *audit.Dispatcher,
) *Update {
	return &Update{repo: repo, shops: shops, audit: audit}
}

func (uc *Update) Execute(ctx context.Context, id uint, in UpdateInput) (*models.Hair, error) {
	h, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, usecase.NotFoundAs(err, ErrNotFound)
	}

	if in.Price != nil {
		if err := checkPrice(*in.Price); err != nil {
			return nil, err
		}
		h.Price = in.Price.Round(2)
	}
	if in.BarbershopID != nil && *in.BarbershopID != h.BarbershopID {
		if err := usecase.RequireShop(ctx, uc.shops, *in.BarbershopID); err != nil {
			return nil, err
		}
		h.BarbershopID = *in.BarbershopID
	}
	if in.Name != nil {
		h.Name = strings.TrimSpace(*in.Name)
	}
	if in.PhotoURL != nil {
		h.PhotoURL = strings.TrimSpace(*in.PhotoURL)
	}

	if err := uc.repo.Update(ctx, h); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: h.BarbershopID,
		Action:       "hair_updated",
		Entity:       "hair",
		EntityID:     &h.ID,
	})

	return h, nil
}
