package review

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domainReview "github.com/BruksfildServices01/barbershop-api/internal/domain/review"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

type CreateInput struct {
	BarbershopID uint
	Rating       float64
	Comment      *string
}

type Create struct {
	repo  domainReview.Repository
	shops usecase.ShopChecker
	audit *audit.Dispatcher
}

func NewCreate(
	repo domainReview.Repository,
	shops usecase.ShopChecker,
	audit *audit.Dispatcher,
) *Create {
	return &Create{repo: repo, shops: shops, audit: audit}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Review, error) {
	if err := checkRating(in.Rating); err != nil {
		return nil, err
	}
	if err := usecase.RequireShop(ctx, uc.shops, in.BarbershopID); err != nil {
		return nil, err
	}

	r := models.Review{
		BarbershopID: in.BarbershopID,
		Rating:       in.Rating,
		Comment:      in.Comment,
	}
	if err := uc.repo.Create(ctx, &r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: r.BarbershopID,
		Action:       "review_created",
		Entity:       "review",
		EntityID:     &r.ID,
	})

	return &r, nil
}
