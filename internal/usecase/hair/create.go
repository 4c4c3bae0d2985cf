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

type CreateInput struct {
	BarbershopID uint
	Name         string
	Price        decimal.Decimal
	PhotoURL     *string
}

type Create struct {
	repo  domainHair.Repository
	shops usecase.ShopChecker
	audit *audit.Dispatcher
}

func NewCreate(
	repo domainHair.Repository,
	shops usecase.ShopChecker,
	audit *audit.Dispatcher,
) *Create {
	return &Create{repo: repo, shops: shops, audit: audit}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Hair, error) {
	if err := checkPrice(in.Price); err != nil {
		return nil, err
	}
	if err := usecase.RequireShop(ctx, uc.shops, in.BarbershopID); err != nil {
		return nil, err
	}

	h := models.Hair{
		BarbershopID: in.BarbershopID,
		Name:         strings.TrimSpace(in.Name),
		Price:        in.Price.Round(2),
	}
	if in.PhotoURL != nil {
		h.PhotoURL = strings.TrimSpace(*in.PhotoURL)
	}
	if err := uc.repo.Create(ctx, &h); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: h.BarbershopID,
		Action:       "hair_created",
		Entity:       "hair",
		EntityID:     &h.ID,
		Metadata:     map[string]string{"price": h.Price.StringFixed(2)},
	})

	return &h, nil
}
