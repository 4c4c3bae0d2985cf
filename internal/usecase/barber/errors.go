package barber

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	domainBarber "github.com/BruksfildServices01/barbershop-api/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

var (
	ErrNotFound           = httperr.ErrNotFound("barber_not_found", "Barber not found.")
	ErrEmailAlreadyExists = httperr.ErrConflict("barber_email_already_exists", "Another barber already uses this email.")
)

// emailFree fails unless email is unused or belongs to the barber self.
func emailFree(ctx context.Context, repo domainBarber.Repository, email string, self uint) error {
	existing, err := repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != self {
		return ErrEmailAlreadyExists
	}
	return nil
}
