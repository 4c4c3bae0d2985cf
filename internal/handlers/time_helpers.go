package handlers

import (
	"time"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

// Schedule dates carry no zone; they are read and written as UTC calendar days.

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(validators.DateLayout, s, time.UTC)
}

func formatDate(t time.Time) string {
	return domain.DateOnly(t).Format(validators.DateLayout)
}

func formatDates(ts []time.Time) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, formatDate(t))
	}
	return out
}
