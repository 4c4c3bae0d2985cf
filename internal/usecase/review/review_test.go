package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type fakeShops map[uint]bool

func (f fakeShops) Exists(_ context.Context, id uint) (bool, error) { return f[id], nil }

type fakeRepo struct {
	rows   map[uint]models.Review
	nextID uint
	writes int
}

func newFakeRepo() *fakeRepo { return &fakeRepo{rows: map[uint]models.Review{}} }

func (f *fakeRepo) List(_ context.Context, p pagination.Params) ([]models.Review, int64, error) {
	var out []models.Review
	for id := uint(1); id <= f.nextID; id++ {
		if r, ok := f.rows[id]; ok {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) Get(_ context.Context, id uint) (*models.Review, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

func (f *fakeRepo) Create(_ context.Context, r *models.Review) error {
	f.writes++
	f.nextID++
	r.ID = f.nextID
	f.rows[r.ID] = *r
	return nil
}

func (f *fakeRepo) Update(_ context.Context, r *models.Review) error {
	f.writes++
	f.rows[r.ID] = *r
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.rows[id]; !ok {
		return domain.ErrNotFound
	}
	f.writes++
	delete(f.rows, id)
	return nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	create := NewCreate(repo, fakeShops{1: true}, nil)

	comment := "clean fade"
	r, err := create.Execute(ctx, CreateInput{BarbershopID: 1, Rating: 4.5, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 4.5, repo.rows[r.ID].Rating)
	assert.Equal(t, "clean fade", *repo.rows[r.ID].Comment)

	_, err = create.Execute(ctx, CreateInput{BarbershopID: 1, Rating: 0})
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	_, err = create.Execute(ctx, CreateInput{BarbershopID: 2, Rating: 5})
	assert.True(t, httperr.IsBusiness(err, "barbershop_not_found"))

	assert.Equal(t, 1, repo.writes)
}

func TestUpdate_Partial(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	shops := fakeShops{1: true}
	comment := "ok"
	r, err := NewCreate(repo, shops, nil).Execute(ctx, CreateInput{BarbershopID: 1, Rating: 3, Comment: &comment})
	require.NoError(t, err)

	rating := 5.0
	got, err := NewUpdate(repo, shops, nil).Execute(ctx, r.ID, UpdateInput{Rating: &rating})
	require.NoError(t, err)

	stored := repo.rows[r.ID]
	assert.Equal(t, 5.0, stored.Rating)
	require.NotNil(t, stored.Comment)
	assert.Equal(t, "ok", *stored.Comment)
	assert.Equal(t, uint(1), stored.BarbershopID)
	assert.Equal(t, stored, *got)

	bad := -1.0
	_, err = NewUpdate(repo, shops, nil).Execute(ctx, r.ID, UpdateInput{Rating: &bad})
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.Equal(t, 5.0, repo.rows[r.ID].Rating)
}

func TestUpdate_MissingDoesNotWrite(t *testing.T) {
	repo := newFakeRepo()
	rating := 4.0
	_, err := NewUpdate(repo, fakeShops{1: true}, nil).Execute(context.Background(), 3, UpdateInput{Rating: &rating})
	assert.True(t, httperr.IsBusiness(err, "review_not_found"))
	assert.Zero(t, repo.writes)
}

func TestDelete_Missing(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	r, err := NewCreate(repo, fakeShops{1: true}, nil).Execute(ctx, CreateInput{BarbershopID: 1, Rating: 4})
	require.NoError(t, err)

	err = NewDelete(repo, nil).Execute(ctx, r.ID+1)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.True(t, httperr.IsBusiness(err, "review_not_found"))
	assert.Len(t, repo.rows, 1)

	require.NoError(t, NewDelete(repo, nil).Execute(ctx, r.ID))
	assert.Empty(t, repo.rows)
}
