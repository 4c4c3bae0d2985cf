package barbershop

import (
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

var (
	ErrNotFound           = usecase.ErrBarbershopNotFound
	ErrSlugAlreadyExists  = httperr.ErrConflict("slug_already_exists", "Another barbershop already uses this slug.")
	ErrInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "No barbershop matches this email and phone.")
)
