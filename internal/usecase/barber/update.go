package barber

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domainBarber "github.com/BruksfildServices01/barbershop-api/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

type UpdateInput struct {
	BarbershopID *uint
	Name         *string
	Email        *string
	Phone        *string
}

type Update struct {
	repo  domainBarber.Repository
	shops usecase.ShopChecker
	audit *audit.Dispatcher
}

func NewUpdate(
	repo domainBarber.Repository,
	shops usecase.ShopChecker,
	audit *audit.Dispatcher,
) *Update {
	return &Update{repo: repo, shops: shops, audit: audit}
}

func (uc *Update) Execute(ctx context.Context, id uint, in UpdateInput) (*models.Barber, error) {
	b, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, usecase.NotFoundAs(err, ErrNotFound)
	}

	if in.BarbershopID != nil && *in.BarbershopID != b.BarbershopID {
		if err := usecase.RequireShop(ctx, uc.shops, *in.BarbershopID); err != nil {
			return nil, err
		}
		b.BarbershopID = *in.BarbershopID
	}

	if in.Email != nil {
		email := validators.NormalizeEmail(*in.Email)
		if email != b.Email {
			if err := emailFree(ctx, uc.repo, email, b.ID); err != nil {
				return nil, err
			}
		}
		b.Email = email
	}
	if in.Name != nil {
		b.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		b.Phone = strings.TrimSpace(*in.Phone)
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, usecase.ConflictAs(err, ErrEmailAlreadyExists)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: b.BarbershopID,
		Action:       "barber_updated",
		Entity:       "barber",
		EntityID:     &b.ID,
	})

	return b, nil
}
