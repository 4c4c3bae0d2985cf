package schedule

import (
	"fmt"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

// Validate checks the shape rules of a variant: week and custom schedules
// need at least one day, every day at least one well-formed period, and no
// day or date may repeat. Unavailable schedules carry no periods at all.
func Validate(v Variant) error {
	details := map[string]string{}

	switch v := v.(type) {
	case WeekVariant:
		if len(v.Days) == 0 {
			details["weekSchedule"] = "week schedule must have at least one period"
		}
		seen := map[int]bool{}
		for i, day := range v.Days {
			key := fmt.Sprintf("weekSchedule[%d]", i)
			d := int(day.DayOfWeek)
			if d < 0 || d > 6 {
				details[key+".dayOfWeek"] = "must be between 0 and 6"
			} else if seen[d] {
				details[key+".dayOfWeek"] = "day declared twice"
			}
			seen[d] = true
			checkPeriods(details, key, day.Periods)
		}

	case CustomVariant:
		if len(v.Days) == 0 {
			details["customSchedule"] = "custom schedule must have at least one period"
		}
		seen := map[string]bool{}
		for i, day := range v.Days {
			key := fmt.Sprintf("customSchedule[%d]", i)
			d := DateOnly(day.Date).Format("2006-01-02")
			if seen[d] {
				details[key+".date"] = "date declared twice"
			}
			seen[d] = true
			checkPeriods(details, key, day.Periods)
		}

	case UnavailableVariant:
		seen := map[string]bool{}
		for i, date := range v.Dates {
			d := DateOnly(date).Format("2006-01-02")
			if seen[d] {
				details[fmt.Sprintf("unavailableDates[%d]", i)] = "date declared twice"
			}
			seen[d] = true
		}

	case nil:
		details["model"] = "is required"

	default:
		details["model"] = fmt.Sprintf("unsupported schedule variant %T", v)
	}

	if len(details) > 0 {
		return httperr.ErrInvalidFields(details)
	}
	return nil
}

func checkPeriods(details map[string]string, key string, periods []Period) {
	if len(periods) == 0 {
		details[key+".periods"] = "must have at least one period"
		return
	}
	for j, p := range periods {
		pk := fmt.Sprintf("%s.periods[%d]", key, j)
		if p.Start < 0 || p.End > 24*60 {
			details[pk] = "times must be within the day"
			continue
		}
		if p.End <= p.Start {
			details[pk+".endTime"] = "must be after startTime"
			continue
		}
		if p.Duration < 1 {
			details[pk+".duration"] = "must be at least 1 minute"
			continue
		}
		if p.Duration > int(p.End-p.Start) {
			details[pk+".duration"] = "must fit between startTime and endTime"
		}
	}
}
