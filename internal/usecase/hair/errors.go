package hair

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

var (
	ErrNotFound             = httperr.ErrNotFound("hair_not_found", "Haircut service not found.")
	ErrPhotoStorageDisabled = httperr.ErrUnavailable("photo_storage_disabled", "Photo storage is not configured.")
	ErrPhotoTooLarge        = httperr.ErrTooLarge("photo_too_large", "Photos are limited to 5 MiB.")
	ErrUnsupportedPhoto     = httperr.ErrValidation("unsupported_photo_type", "Photos must be jpeg, png or webp images.")
)

var minPrice = decimal.NewFromInt(1)

func checkPrice(price decimal.Decimal) error {
	if price.LessThan(minPrice) {
		return httperr.ErrInvalidFields(map[string]string{"price": "must be at least 1"})
	}
	return nil
}
