package review

import "github.com/BruksfildServices01/barbershop-api/internal/httperr"

var ErrNotFound = httperr.ErrNotFound("review_not_found", "Review not found.")

func checkRating(rating float64) error {
	if rating <= 0 {
		return httperr.ErrInvalidFields(map[string]string{"rating": "must be greater than 0"})
	}
	return nil
}
