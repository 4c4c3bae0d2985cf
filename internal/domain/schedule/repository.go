package schedule

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type Repository interface {
	// Create stores the schedule row and its variant rows atomically and
	// fills in ID and timestamps.
	Create(ctx context.Context, s *Schedule) error

	Get(ctx context.Context, id uint) (*Schedule, error)

	// List returns one page of schedules, each carrying the rows of its own
	// variant, ordered by id.
	List(ctx context.Context, f Filter, p pagination.Params) ([]Schedule, int64, error)

	// Update persists BarbershopID and, when the variant is non-nil,
	// replaces every variant row atomically.
	Update(ctx context.Context, s *Schedule, replace Variant) error

	Delete(ctx context.Context, id uint) error
}
