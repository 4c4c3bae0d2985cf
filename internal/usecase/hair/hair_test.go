package hair

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
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
	rows       map[uint]models.Hair
	writes     int
	failUpdate error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{rows: map[uint]models.Hair{}} }

func (f *fakeRepo) List(context.Context, pagination.Params) ([]models.Hair, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepo) Get(_ context.Context, id uint) (*models.Hair, error) {
	h, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &h, nil
}

func (f *fakeRepo) Create(_ context.Context, h *models.Hair) error {
	f.writes++
	h.ID = uint(len(f.rows) + 1)
	f.rows[h.ID] = *h
	return nil
}

func (f *fakeRepo) Update(_ context.Context, h *models.Hair) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	f.writes++
	f.rows[h.ID] = *h
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

func strPtr(s string) *string { return &s }

func TestCreate_RejectsPriceBelowOne(t *testing.T) {
	repo := newFakeRepo()
	_, err := NewCreate(repo, fakeShops{1: true}, nil).Execute(context.Background(), CreateInput{
		BarbershopID: 1,
		Name:         "Cut",
		Price:        decimal.RequireFromString("0.99"),
	})
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.Zero(t, repo.writes)
}

func TestCreate_KeepsPhotoURL(t *testing.T) {
	repo := newFakeRepo()
	h, err := NewCreate(repo, fakeShops{1: true}, nil).Execute(context.Background(), CreateInput{
		BarbershopID: 1,
		Name:         "Fade",
		Price:        decimal.NewFromInt(30),
		PhotoURL:     strPtr("https://cdn.example.com/fade.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/fade.png", repo.rows[h.ID].PhotoURL)
}

func TestUpdate_Partial(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	shops := fakeShops{1: true}
	h, err := NewCreate(repo, shops, nil).Execute(ctx, CreateInput{BarbershopID: 1, Name: "Fade", Price: decimal.NewFromInt(30)})
	require.NoError(t, err)

	price := decimal.RequireFromString("42.50")
	got, err := NewUpdate(repo, shops, nil).Execute(ctx, h.ID, UpdateInput{
		Price:    &price,
		PhotoURL: strPtr("https://cdn.example.com/new.png"),
	})
	require.NoError(t, err)

	stored := repo.rows[h.ID]
	assert.Equal(t, "Fade", stored.Name)
	assert.Equal(t, uint(1), stored.BarbershopID)
	assert.True(t, price.Equal(stored.Price))
	assert.Equal(t, "https://cdn.example.com/new.png", stored.PhotoURL)
	assert.Equal(t, stored, *got)
}

func TestUpdate_MissingDoesNotWrite(t *testing.T) {
	repo := newFakeRepo()
	name := "Any"
	_, err := NewUpdate(repo, fakeShops{1: true}, nil).Execute(context.Background(), 7, UpdateInput{Name: &name})
	assert.True(t, httperr.IsBusiness(err, "hair_not_found"))
	assert.Zero(t, repo.writes)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	h, err := NewCreate(repo, fakeShops{1: true}, nil).Execute(ctx, CreateInput{BarbershopID: 1, Name: "Fade", Price: decimal.NewFromInt(30)})
	require.NoError(t, err)

	err = NewDelete(repo, nil).Execute(ctx, h.ID+1)
	assert.True(t, httperr.IsBusiness(err, "hair_not_found"))
	assert.Len(t, repo.rows, 1)

	require.NoError(t, NewDelete(repo, nil).Execute(ctx, h.ID))
	assert.Empty(t, repo.rows)
}
