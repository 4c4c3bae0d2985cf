package barbershop

import (
	"context"

	domainShop "github.com/BruksfildServices01/barbershop-api/internal/domain/barbershop"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type List struct {
	repo domainShop.Repository
}

func NewList(repo domainShop.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, p pagination.Params) (pagination.Page[models.Barbershop], error) {
	items, total, err := uc.repo.List(ctx, p)
	if err != nil {
		return pagination.Page[models.Barbershop]{}, err
	}
	return pagination.NewPage(items, p, total), nil
}
