package review

import (
	"context"

	domainReview "github.com/BruksfildServices01/barbershop-api/internal/domain/review"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type List struct {
	repo domainReview.Repository
}

func NewList(repo domainReview.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, p pagination.Params) (pagination.Page[models.Review], error) {
	items, total, err := uc.repo.List(ctx, p)
	if err != nil {
		return pagination.Page[models.Review]{}, err
	}
	return pagination.NewPage(items, p, total), nil
}
