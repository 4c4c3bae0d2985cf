package barber

import (
	"context"

	domainBarber "github.com/BruksfildServices01/barbershop-api/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type List struct {
	repo domainBarber.Repository
}

func NewList(repo domainBarber.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, p pagination.Params) (pagination.Page[models.Barber], error) {
	items, total, err := uc.repo.List(ctx, p)
	if err != nil {
		return pagination.Page[models.Barber]{}, err
	}
	return pagination.NewPage(items, p, total), nil
}
