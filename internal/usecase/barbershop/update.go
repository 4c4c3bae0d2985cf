package barbershop

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domainShop "github.com/BruksfildServices01/barbershop-api/internal/domain/barbershop"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

// UpdateInput changes only the fields that are non-nil.
type UpdateInput struct {
	Name    *string
	Email   *string
	Slug    *string
	Address *string
	Phone   *string
}

type Update struct {
	repo  domainShop.Repository
	audit *audit.Dispatcher
}

func NewUpdate(repo domainShop.Repository, audit *audit.Dispatcher) *Update {
	return &Update{repo: repo, audit: audit}
}

func (uc *Update) Execute(ctx context.Context, id uint, in UpdateInput) (*models.Barbershop, error) {
	shop, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, usecase.NotFoundAs(err, ErrNotFound)
	}

	if in.Slug != nil {
		slug := normalizeSlug(*in.Slug)
		if slug != shop.Slug {
			if err := slugFree(ctx, uc.repo, slug, shop.ID); err != nil {
				return nil, err
			}
		}
		shop.Slug = slug
	}
	if in.Name != nil {
		shop.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		shop.Email = validators.NormalizeEmail(*in.Email)
	}
	if in.Address != nil {
		shop.Address = strings.TrimSpace(*in.Address)
	}
	if in.Phone != nil {
		shop.Phone = strings.TrimSpace(*in.Phone)
	}

	if err := uc.repo.Update(ctx, shop); err != nil {
		return nil, usecase.ConflictAs(err, ErrSlugAlreadyExists)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Action:       "barbershop_updated",
		Entity:       "barbershop",
		EntityID:     &shop.ID,
	})

	return shop, nil
}
