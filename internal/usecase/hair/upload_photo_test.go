package hair

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type memStore struct {
	keys    []string
	deleted []string
}

func (m *memStore) Put(_ context.Context, key string, body []byte, contentType string) (string, error) {
	m.keys = append(m.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

func samplePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 20))))
	return buf.Bytes()
}

func TestUploadPhoto_StoresWebPAndSetsURL(t *testing.T) {
	repo := &fakeRepo{rows: map[uint]models.Hair{3: {ID: 3, BarbershopID: 8, Name: "Fade", Price: decimal.NewFromInt(30)}}}
	store := &memStore{}

	h, err := NewUploadPhoto(repo, store, nil).Execute(context.Background(), 3, bytes.NewReader(samplePNG(t)))
	require.NoError(t, err)

	require.Len(t, store.keys, 1)
	assert.True(t, strings.HasPrefix(store.keys[0], "hair/8/"))
	assert.True(t, strings.HasSuffix(store.keys[0], ".webp"))
	assert.Equal(t, "https://cdn.example.com/"+store.keys[0], h.PhotoURL)
	assert.Equal(t, h.PhotoURL, repo.rows[3].PhotoURL)
}

func TestUploadPhoto_Errors(t *testing.T) {
	repo := &fakeRepo{rows: map[uint]models.Hair{1: {ID: 1, BarbershopID: 1}}}

	_, err := NewUploadPhoto(repo, nil, nil).Execute(context.Background(), 1, bytes.NewReader(samplePNG(t)))
	assert.True(t, httperr.IsBusiness(err, "photo_storage_disabled"))

	_, err = NewUploadPhoto(repo, &memStore{}, nil).Execute(context.Background(), 2, bytes.NewReader(samplePNG(t)))
	assert.True(t, httperr.IsBusiness(err, "hair_not_found"))

	_, err = NewUploadPhoto(repo, &memStore{}, nil).Execute(context.Background(), 1, strings.NewReader("hello"))
	assert.True(t, httperr.IsBusiness(err, "unsupported_photo_type"))
}

func TestUploadPhoto_RemovesObjectWhenRowUpdateFails(t *testing.T) {
	repo := &fakeRepo{
		rows:       map[uint]models.Hair{4: {ID: 4, BarbershopID: 2, Name: "Fade", Price: decimal.NewFromInt(30)}},
		failUpdate: errors.New("connection reset"),
	}
	store := &memStore{}

	_, err := NewUploadPhoto(repo, store, nil).Execute(context.Background(), 4, bytes.NewReader(samplePNG(t)))
	require.Error(t, err)

	require.Len(t, store.keys, 1)
	assert.Equal(t, store.keys, store.deleted)
	assert.Empty(t, repo.rows[4].PhotoURL)
}

func TestUploadPhoto_RowDeletedMeanwhile(t *testing.T) {
	repo := &fakeRepo{
		rows:       map[uint]models.Hair{4: {ID: 4, BarbershopID: 2}},
		failUpdate: domain.ErrNotFound,
	}
	store := &memStore{}

	_, err := NewUploadPhoto(repo, store, nil).Execute(context.Background(), 4, bytes.NewReader(samplePNG(t)))
	assert.True(t, httperr.IsBusiness(err, "hair_not_found"))
	assert.Len(t, store.deleted, 1)
}
