package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	domainSchedule "github.com/BruksfildServices01/barbershop-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type fakeShops map[uint]bool

func (f fakeShops) Exists(_ context.Context, id uint) (bool, error) { return f[id], nil }

type fakeRepo struct {
	rows   map[uint]domainSchedule.Schedule
	nextID uint
}

func newFakeRepo() *fakeRepo { return &fakeRepo{rows: map[uint]domainSchedule.Schedule{}} }

func (f *fakeRepo) Create(_ context.Context, s *domainSchedule.Schedule) error {
	f.nextID++
	s.ID = f.nextID
	f.rows[s.ID] = *s
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id uint) (*domainSchedule.Schedule, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (f *fakeRepo) List(context.Context, domainSchedule.Filter, pagination.Params) ([]domainSchedule.Schedule, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepo) Update(_ context.Context, s *domainSchedule.Schedule, replace domainSchedule.Variant) error {
	if replace != nil {
		s.Variant = replace
	}
	f.rows[s.ID] = *s
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	delete(f.rows, id)
	return nil
}

func week(periods ...domainSchedule.Period) domainSchedule.WeekVariant {
	return domainSchedule.WeekVariant{Days: []domainSchedule.WeekDay{{DayOfWeek: time.Monday, Periods: periods}}}
}

func TestCreate_RejectsWeekWithoutPeriods(t *testing.T) {
	repo := newFakeRepo()
	_, err := NewCreate(repo, fakeShops{1: true}, nil).Execute(context.Background(), CreateInput{
		BarbershopID: 1,
		Variant:      domainSchedule.WeekVariant{},
	})
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.Empty(t, repo.rows)
}

func TestCreate_UnknownShop(t *testing.T) {
	_, err := NewCreate(newFakeRepo(), fakeShops{}, nil).Execute(context.Background(), CreateInput{
		BarbershopID: 3,
		Variant:      domainSchedule.UnavailableVariant{},
	})
	assert.True(t, httperr.IsBusiness(err, "barbershop_not_found"))
}

func TestUpdate_ModelIsImmutable(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	shops := fakeShops{1: true}

	s, err := NewCreate(repo, shops, nil).Execute(ctx, CreateInput{
		BarbershopID: 1,
		Variant:      week(domainSchedule.Period{Start: 540, End: 600, Duration: 30}),
	})
	require.NoError(t, err)

	update := NewUpdate(repo, shops, nil)

	custom := domainSchedule.ModelCustom
	_, err = update.Execute(ctx, s.ID, UpdateInput{Model: &custom})
	assert.True(t, httperr.IsBusiness(err, "schedule_model_immutable"))

	_, err = update.Execute(ctx, s.ID, UpdateInput{Variant: domainSchedule.UnavailableVariant{}})
	assert.True(t, httperr.IsBusiness(err, "schedule_model_immutable"))

	replacement := week(domainSchedule.Period{Start: 600, End: 720, Duration: 60})
	got, err := update.Execute(ctx, s.ID, UpdateInput{Variant: replacement})
	require.NoError(t, err)
	assert.Equal(t, replacement, got.Variant)
}

func TestUpdate_ValidatesReplacement(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	shops := fakeShops{1: true}

	s, err := NewCreate(repo, shops, nil).Execute(ctx, CreateInput{
		BarbershopID: 1,
		Variant:      week(domainSchedule.Period{Start: 540, End: 600, Duration: 30}),
	})
	require.NoError(t, err)

	_, err = NewUpdate(repo, shops, nil).Execute(ctx, s.ID, UpdateInput{
		Variant: week(domainSchedule.Period{Start: 600, End: 540, Duration: 30}),
	})
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.Equal(t, domainSchedule.Clock(540), repo.rows[s.ID].Variant.(domainSchedule.WeekVariant).Days[0].Periods[0].Start)
}

func TestUpdate_Missing(t *testing.T) {
	_, err := NewUpdate(newFakeRepo(), fakeShops{}, nil).Execute(context.Background(), 5, UpdateInput{})
	assert.True(t, httperr.IsBusiness(err, "schedule_not_found"))
}
