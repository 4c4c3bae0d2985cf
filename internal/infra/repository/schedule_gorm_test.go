package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shared "github.com/BruksfildServices01/barbershop-api/internal/domain"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
	"github.com/BruksfildServices01/barbershop-api/internal/testutil"
)

func clock(t *testing.T, s string) domain.Clock {
	t.Helper()
	c, err := domain.ParseClock(s)
	require.NoError(t, err)
	return c
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestScheduleRepository_CreateAndListDispatchesPerRow(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewScheduleGormRepository(db)

	week := &domain.Schedule{BarbershopID: 1, Variant: domain.WeekVariant{Days: []domain.WeekDay{
		{DayOfWeek: time.Monday, Periods: []domain.Period{
			{Start: clock(t, "09:00"), End: clock(t, "12:00"), Duration: 30},
			{Start: clock(t, "13:00"), End: clock(t, "18:00"), Duration: 45},
		}},
		{DayOfWeek: time.Wednesday, Periods: []domain.Period{
			{Start: clock(t, "10:00"), End: clock(t, "14:00"), Duration: 60},
		}},
	}}}
	custom := &domain.Schedule{BarbershopID: 1, Variant: domain.CustomVariant{Days: []domain.CustomDay{
		{Date: day(2025, 3, 10), Periods: []domain.Period{
			{Start: clock(t, "08:00"), End: clock(t, "09:00"), Duration: 20},
		}},
	}}}
	unavailable := &domain.Schedule{BarbershopID: 2, Variant: domain.UnavailableVariant{Dates: []time.Time{
		day(2025, 12, 25), day(2026, 1, 1),
	}}}

	for _, s := range []*domain.Schedule{week, custom, unavailable} {
		require.NoError(t, repo.Create(ctx, s))
		assert.NotZero(t, s.ID)
	}

	got, total, err := repo.List(ctx, domain.Filter{}, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, got, 3)

	wv, ok := got[0].Variant.(domain.WeekVariant)
	require.True(t, ok, "first row should be a week schedule, got %T", got[0].Variant)
	require.Len(t, wv.Days, 2)
	assert.Equal(t, time.Monday, wv.Days[0].DayOfWeek)
	assert.Equal(t, []domain.Period{
		{Start: clock(t, "09:00"), End: clock(t, "12:00"), Duration: 30},
		{Start: clock(t, "13:00"), End: clock(t, "18:00"), Duration: 45},
	}, wv.Days[0].Periods)
	assert.Equal(t, time.Wednesday, wv.Days[1].DayOfWeek)

	cv, ok := got[1].Variant.(domain.CustomVariant)
	require.True(t, ok)
	require.Len(t, cv.Days, 1)
	assert.True(t, cv.Days[0].Date.Equal(day(2025, 3, 10)))
	assert.Equal(t, 20, cv.Days[0].Periods[0].Duration)

	uv, ok := got[2].Variant.(domain.UnavailableVariant)
	require.True(t, ok)
	require.Len(t, uv.Dates, 2)
	assert.True(t, uv.Dates[0].Equal(day(2025, 12, 25)))
}

func TestScheduleRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewScheduleGormRepository(testutil.NewDB(t))

	require.NoError(t, repo.Create(ctx, &domain.Schedule{BarbershopID: 1, Variant: domain.UnavailableVariant{}}))
	require.NoError(t, repo.Create(ctx, &domain.Schedule{BarbershopID: 2, Variant: domain.UnavailableVariant{}}))
	require.NoError(t, repo.Create(ctx, &domain.Schedule{BarbershopID: 2, Variant: domain.CustomVariant{Days: []domain.CustomDay{
		{Date: day(2025, 5, 1), Periods: []domain.Period{{Start: 600, End: 660, Duration: 30}}},
	}}}))

	got, total, err := repo.List(ctx, domain.Filter{BarbershopID: 2}, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)

	got, total, err = repo.List(ctx, domain.Filter{BarbershopID: 2, Model: domain.ModelCustom}, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ModelCustom, got[0].Model())
}

func TestScheduleRepository_UpdateReplacesVariantRows(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewScheduleGormRepository(db)

	s := &domain.Schedule{BarbershopID: 1, Variant: domain.WeekVariant{Days: []domain.WeekDay{
		{DayOfWeek: time.Monday, Periods: []domain.Period{{Start: 540, End: 600, Duration: 30}}},
		{DayOfWeek: time.Tuesday, Periods: []domain.Period{{Start: 540, End: 600, Duration: 30}}},
	}}}
	require.NoError(t, repo.Create(ctx, s))
	assert.Equal(t, int64(2), testutil.Count(t, db, &models.WeekPeriod{}))

	replacement := domain.WeekVariant{Days: []domain.WeekDay{
		{DayOfWeek: time.Friday, Periods: []domain.Period{{Start: 600, End: 720, Duration: 60}}},
	}}
	require.NoError(t, repo.Update(ctx, s, replacement))
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.WeekPeriod{}))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, replacement, got.Variant)

	err = repo.Update(ctx, s, domain.UnavailableVariant{})
	assert.Error(t, err)
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.WeekPeriod{}))
}

func TestScheduleRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewScheduleGormRepository(db)

	s := &domain.Schedule{BarbershopID: 1, Variant: domain.UnavailableVariant{Dates: []time.Time{day(2025, 1, 1)}}}
	require.NoError(t, repo.Create(ctx, s))

	require.NoError(t, repo.Delete(ctx, s.ID))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Schedule{}))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.UnavailableDate{}))

	assert.ErrorIs(t, repo.Delete(ctx, s.ID), shared.ErrNotFound)
	_, err := repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func scheduleWithDate(shopID uint) *domain.Schedule {
	return &domain.Schedule{
		BarbershopID: shopID,
		Variant:      domain.UnavailableVariant{Dates: []time.Time{day(2025, 7, 4)}},
	}
}
