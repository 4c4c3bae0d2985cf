package schedule

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(
	ctx context.Context,
	f domain.Filter,
	p pagination.Params,
) (pagination.Page[domain.Schedule], error) {

	items, total, err := uc.repo.List(ctx, f, p)
	if err != nil {
		return pagination.Page[domain.Schedule]{}, err
	}
	return pagination.NewPage(items, p, total), nil
}
