package schedule

import "github.com/BruksfildServices01/barbershop-api/internal/httperr"

var (
	ErrNotFound       = httperr.ErrNotFound("schedule_not_found", "Schedule not found.")
	ErrModelImmutable = httperr.ErrValidation("schedule_model_immutable", "The model of a schedule cannot change after creation.")
)
