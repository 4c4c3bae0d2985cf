package barbershop

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	domainShop "github.com/BruksfildServices01/barbershop-api/internal/domain/barbershop"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

type CreateInput struct {
	Name    string
	Email   string
	Slug    string
	Address string
	Phone   string
}

type Create struct {
	repo  domainShop.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domainShop.Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Barbershop, error) {
	shop := models.Barbershop{
		Name:    strings.TrimSpace(in.Name),
		Email:   validators.NormalizeEmail(in.Email),
		Slug:    normalizeSlug(in.Slug),
		Address: strings.TrimSpace(in.Address),
		Phone:   strings.TrimSpace(in.Phone),
	}

	if err := slugFree(ctx, uc.repo, shop.Slug, 0); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, &shop); err != nil {
		return nil, usecase.ConflictAs(err, ErrSlugAlreadyExists)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Action:       "barbershop_created",
		Entity:       "barbershop",
		EntityID:     &shop.ID,
		Metadata:     map[string]string{"slug": shop.Slug},
	})

	return &shop, nil
}

// slugFree fails unless slug is unused or used by self.
func slugFree(ctx context.Context, repo domainShop.Repository, slug string, self uint) error {
	existing, err := repo.FindBySlug(ctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != self {
		return ErrSlugAlreadyExists
	}
	return nil
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
