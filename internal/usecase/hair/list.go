package hair

import (
	"context"

	domainHair "github.com/BruksfildServices01/barbershop-api/internal/domain/hair"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type List struct {
	repo domainHair.Repository
}

func NewList(repo domainHair.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, p pagination.Params) (pagination.Page[models.Hair], error) {
	items, total, err := uc.repo.List(ctx, p)
	if err != nil {
		return pagination.Page[models.Hair]{}, err
	}
	return pagination.NewPage(items, p, total), nil
}
