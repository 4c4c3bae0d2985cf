package review

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domainReview "github.com/BruksfildServices01/barbershop-api/internal/domain/review"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

type UpdateInput struct {
	BarbershopID *uint
	Rating       *float64
	Comment      *string
}

type Update struct {
	repo  domainReview.Repository
	shops usecase.ShopChecker
	audit *audit.Dispatcher
}

func NewUpdate(
	repo domainReview.Repository,
	shops usecase.ShopChecker,
	audit *audit.Dispatcher,
) *Update {
	return &Update{repo: repo, shops: shops, audit: audit}
}

func (uc *Update) Execute(ctx context.Context, id uint, in UpdateInput) (*models.Review, error) {
	r, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, usecase.NotFoundAs(err, ErrNotFound)
	}

	if in.Rating != nil {
		if err := checkRating(*in.Rating); err != nil {
			return nil, err
		}
		r.Rating = *in.Rating
	}
	if in.BarbershopID != nil && *in.BarbershopID != r.BarbershopID {
		if err := usecase.RequireShop(ctx, uc.shops, *in.BarbershopID); err != nil {
			return nil, err
		}
		r.BarbershopID = *in.BarbershopID
	}
	if in.Comment != nil {
		r.Comment = in.Comment
	}

	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: r.BarbershopID,
		Action:       "review_updated",
		Entity:       "review",
		EntityID:     &r.ID,
	})

	return r, nil
}
