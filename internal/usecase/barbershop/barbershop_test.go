package barbershop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/auth"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/testutil"
)

func TestCreate_SlugConflict(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBarbershopGormRepository(testutil.NewDB(t))
	create := NewCreate(repo, nil)

	shop, err := create.Execute(ctx, CreateInput{Name: "Corte Fino", Email: "Owner@Shop.com", Slug: " Corte-Fino ", Address: "Rua 1", Phone: "119"})
	require.NoError(t, err)
	assert.Equal(t, "corte-fino", shop.Slug)
	assert.Equal(t, "owner@shop.com", shop.Email)

	_, err = create.Execute(ctx, CreateInput{Name: "Other", Email: "o@shop.com", Slug: "corte-fino", Address: "Rua 2", Phone: "118"})
	assert.True(t, httperr.IsBusiness(err, "slug_already_exists"))
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBarbershopGormRepository(testutil.NewDB(t))
	shop, err := NewCreate(repo, nil).Execute(ctx, CreateInput{Name: "A", Email: "a@shop.com", Slug: "a", Address: "x", Phone: "555"})
	require.NoError(t, err)

	tokens := auth.NewTokens("secret-secret-secret-secret-secret", 0)
	authenticate := NewAuthenticate(repo, tokens)

	out, err := authenticate.Execute(ctx, AuthenticateInput{Email: "A@Shop.com", Phone: "555"})
	require.NoError(t, err)
	assert.Equal(t, shop.ID, out.BarbershopID)

	claims, err := tokens.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, shop.ID, claims.BarbershopID)

	_, err = authenticate.Execute(ctx, AuthenticateInput{Email: "a@shop.com", Phone: "000"})
	assert.True(t, httperr.IsKind(err, httperr.KindUnauthorized))
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBarbershopGormRepository(testutil.NewDB(t))
	create := NewCreate(repo, nil)
	a, err := create.Execute(ctx, CreateInput{Name: "A", Email: "a@x.com", Slug: "a", Address: "x", Phone: "1"})
	require.NoError(t, err)
	_, err = create.Execute(ctx, CreateInput{Name: "B", Email: "b@x.com", Slug: "b", Address: "x", Phone: "2"})
	require.NoError(t, err)

	update := NewUpdate(repo, nil)
	taken := "b"
	_, err = update.Execute(ctx, a.ID, UpdateInput{Slug: &taken})
	assert.True(t, httperr.IsBusiness(err, "slug_already_exists"))

	addr := "Rua Nova"
	got, err := update.Execute(ctx, a.ID, UpdateInput{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "Rua Nova", got.Address)
	assert.Equal(t, "A", got.Name)

	del := NewDelete(repo, nil)
	require.NoError(t, del.Execute(ctx, a.ID))
	assert.True(t, httperr.IsBusiness(del.Execute(ctx, a.ID), "barbershop_not_found"))
}
