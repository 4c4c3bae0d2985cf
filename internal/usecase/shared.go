// Package usecase holds the guards shared by the per-resource use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

var ErrBarbershopNotFound = httperr.ErrNotFound("barbershop_not_found", "Barbershop not found.")

type ShopChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// RequireShop fails with barbershop_not_found unless the shop exists.
func RequireShop(ctx context.Context, shops ShopChecker, id uint) error {
	ok, err := shops.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check barbershop %d: %w", id, err)
	}
	if !ok {
		return ErrBarbershopNotFound
	}
	return nil
}

// NotFoundAs replaces a storage not-found error with notFound.
func NotFoundAs(err, notFound error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return notFound
	}
	return err
}

// ConflictAs replaces a storage duplicate-key error with conflict.
func ConflictAs(err, conflict error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return conflict
	}
	return err
}
