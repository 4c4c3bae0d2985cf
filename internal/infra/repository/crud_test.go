package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
	"github.com/BruksfildServices01/barbershop-api/internal/testutil"
)

func TestList_PagesAreDisjointAndContiguous(t *testing.T) {
	ctx := context.Background()
	repo := NewBarberGormRepository(testutil.NewDB(t))

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, &models.Barber{
			BarbershopID: 1,
			Name:         fmt.Sprintf("Barber %d", i),
			Email:        fmt.Sprintf("b%d@example.com", i),
			Phone:        "1",
		}))
	}

	var seen []uint
	for page := 1; page <= 3; page++ {
		items, total, err := repo.List(ctx, pagination.New(page, 3))
		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
		assert.LessOrEqual(t, len(items), 3)
		for _, b := range items {
			seen = append(seen, b.ID)
		}
	}

	require.Len(t, seen, 7)
	for i := 1; i < len(seen); i++ {
		assert.Equal(t, seen[i-1]+1, seen[i], "ids must follow each other across pages")
	}

	items, _, err := repo.List(ctx, pagination.New(4, 3))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBarberRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewBarberGormRepository(db)

	b := models.Barber{BarbershopID: 1, Name: "A", Email: "same@example.com", Phone: "1"}
	require.NoError(t, repo.Create(ctx, &b))

	dup := models.Barber{BarbershopID: 1, Name: "B", Email: "same@example.com", Phone: "2"}
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrDuplicate)
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Barber{}))
}

func TestCrud_DeleteMissing(t *testing.T) {
	repo := NewReviewGormRepository(testutil.NewDB(t))
	assert.ErrorIs(t, repo.Delete(context.Background(), 42), domain.ErrNotFound)

	_, err := repo.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBarbershopRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	shops := NewBarbershopGormRepository(db)

	keep := models.Barbershop{Name: "Keep", Email: "k@example.com", Slug: "keep", Address: "x", Phone: "1"}
	gone := models.Barbershop{Name: "Gone", Email: "g@example.com", Slug: "gone", Address: "x", Phone: "2"}
	require.NoError(t, shops.Create(ctx, &keep))
	require.NoError(t, shops.Create(ctx, &gone))

	require.NoError(t, NewBarberGormRepository(db).Create(ctx, &models.Barber{BarbershopID: gone.ID, Name: "b", Email: "b@example.com", Phone: "1"}))
	require.NoError(t, NewBarberGormRepository(db).Create(ctx, &models.Barber{BarbershopID: keep.ID, Name: "c", Email: "c@example.com", Phone: "1"}))
	require.NoError(t, NewReviewGormRepository(db).Create(ctx, &models.Review{BarbershopID: gone.ID, Rating: 5}))

	schedules := NewScheduleGormRepository(db)
	s := scheduleWithDate(gone.ID)
	require.NoError(t, schedules.Create(ctx, s))

	require.NoError(t, shops.Delete(ctx, gone.ID))

	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Barbershop{}))
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Barber{}))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Review{}))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Schedule{}))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.UnavailableDate{}))

	assert.ErrorIs(t, shops.Delete(ctx, gone.ID), domain.ErrNotFound)
}

func TestBarbershopRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	shops := NewBarbershopGormRepository(testutil.NewDB(t))

	shop := models.Barbershop{Name: "A", Email: "a@example.com", Slug: "a", Address: "x", Phone: "55"}
	require.NoError(t, shops.Create(ctx, &shop))

	got, err := shops.FindByEmailAndPhone(ctx, "a@example.com", "55")
	require.NoError(t, err)
	assert.Equal(t, shop.ID, got.ID)

	_, err = shops.FindByEmailAndPhone(ctx, "a@example.com", "56")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	dup := models.Barbershop{Name: "B", Email: "b@example.com", Slug: "a", Address: "x", Phone: "1"}
	assert.ErrorIs(t, shops.Create(ctx, &dup), domain.ErrDuplicate)

	ok, err := shops.Exists(ctx, shop.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
