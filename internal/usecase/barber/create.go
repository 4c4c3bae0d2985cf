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

type CreateInput struct {
	BarbershopID uint
	Name         string
	Email        string
	Phone        string
}

type Create struct {
	repo  domainBarber.Repository
	shops usecase.ShopChecker
	audit *audit.Dispatcher
}

func NewCreate(
	repo domainBarber.Repository,
	shops usecase.ShopChecker,
	audit *audit.Dispatcher,
) *Create {
	return &Create{repo: repo, shops: shops, audit: audit}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Barber, error) {
	if err := usecase.RequireShop(ctx, uc.shops, in.BarbershopID); err != nil {
		return nil, err
	}

	b := models.Barber{
		BarbershopID: in.BarbershopID,
		Name:         strings.TrimSpace(in.Name),
		Email:        validators.NormalizeEmail(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
	}

	if err := emailFree(ctx, uc.repo, b.Email, 0); err != nil {
		return nil, err
	}

	// the unique index catches a concurrent create that passed the check above
	if err := uc.repo.Create(ctx, &b); err != nil {
		return nil, usecase.ConflictAs(err, ErrEmailAlreadyExists)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: b.BarbershopID,
		Action:       "barber_created",
		Entity:       "barber",
		EntityID:     &b.ID,
		Metadata:     map[string]string{"email": b.Email},
	})

	return &b, nil
}
