package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

// ======================================================
// REQUEST SHAPES
// ======================================================

type PeriodRequest struct {
	StartTime string `json:"startTime" binding:"required,hhmm" example:"09:00"`
	EndTime   string `json:"endTime" binding:"required,hhmm" example:"12:00"`
	Duration  int    `json:"duration" binding:"required,min=1" example:"30"`
}

type WeekDayRequest struct {
	DayOfWeek *int            `json:"dayOfWeek" binding:"required,min=0,max=6" example:"1"`
	Periods   []PeriodRequest `json:"periods" binding:"dive"`
}

type CustomDayRequest struct {
	Date    string          `json:"date" binding:"required,isodate" example:"2025-03-10"`
	Periods []PeriodRequest `json:"periods" binding:"dive"`
}

// variantPayload holds the variant keys of a request body. A nil slice means
// the key was absent.
type variantPayload struct {
	WeekSchedule     []WeekDayRequest
	CustomSchedule   []CustomDayRequest
	UnavailableDates []string
	// Periods catches a flat top-level "periods" list, which is never valid.
	Periods json.RawMessage
}

// present lists the variant keys that were sent.
func (r variantPayload) present() []domain.Model {
	var out []domain.Model
	if r.WeekSchedule != nil {
		out = append(out, domain.ModelWeek)
	}
	if r.CustomSchedule != nil {
		out = append(out, domain.ModelCustom)
	}
	if r.UnavailableDates != nil {
		out = append(out, domain.ModelUnavailable)
	}
	return out
}

// variant builds the payload for model m, rejecting keys of any other model.
func (r variantPayload) variant(m domain.Model) (domain.Variant, error) {
	details := map[string]string{}
	if r.Periods != nil {
		details["periods"] = strayPeriodsMessage(m)
	}
	for _, other := range r.present() {
		if other != m {
			details[variantKey(other)] = fmt.Sprintf("not allowed for model %q", m)
		}
	}
	if len(details) > 0 {
		return nil, httperr.ErrInvalidFields(details)
	}

	switch m {
	case domain.ModelWeek:
		v := domain.WeekVariant{}
		for i, d := range r.WeekSchedule {
			periods, err := toPeriods(fmt.Sprintf("weekSchedule[%d]", i), d.Periods)
			if err != nil {
				return nil, err
			}
			v.Days = append(v.Days, domain.WeekDay{DayOfWeek: time.Weekday(*d.DayOfWeek), Periods: periods})
		}
		return v, nil

	case domain.ModelCustom:
		v := domain.CustomVariant{}
		for i, d := range r.CustomSchedule {
			key := fmt.Sprintf("customSchedule[%d]", i)
			date, err := parseDate(d.Date)
			if err != nil {
				return nil, httperr.ErrInvalidFields(map[string]string{key + ".date": "must be a date formatted YYYY-MM-DD"})
			}
			periods, err := toPeriods(key, d.Periods)
			if err != nil {
				return nil, err
			}
			v.Days = append(v.Days, domain.CustomDay{Date: date, Periods: periods})
		}
		return v, nil

	case domain.ModelUnavailable:
		v := domain.UnavailableVariant{}
		for i, s := range r.UnavailableDates {
			date, err := parseDate(s)
			if err != nil {
				return nil, httperr.ErrInvalidFields(map[string]string{
					fmt.Sprintf("unavailableDates[%d]", i): "must be a date formatted YYYY-MM-DD",
				})
			}
			v.Dates = append(v.Dates, date)
		}
		return v, nil
	}

	return nil, httperr.ErrInvalidFields(map[string]string{"model": "must be one of [week custom unavailable]"})
}

func toPeriods(key string, in []PeriodRequest) ([]domain.Period, error) {
	out := make([]domain.Period, 0, len(in))
	for j, p := range in {
		start, errStart := domain.ParseClock(p.StartTime)
		end, errEnd := domain.ParseClock(p.EndTime)
		if errStart != nil || errEnd != nil {
			return nil, httperr.ErrInvalidFields(map[string]string{
				fmt.Sprintf("%s.periods[%d]", key, j): "times must be formatted HH:MM",
			})
		}
		out = append(out, domain.Period{Start: start, End: end, Duration: p.Duration})
	}
	return out, nil
}

func strayPeriodsMessage(m domain.Model) string {
	if m == domain.ModelUnavailable {
		return "not allowed; unavailable schedules list unavailableDates"
	}
	return fmt.Sprintf("not allowed; send periods per entry under %s", variantKey(m))
}

func variantKey(m domain.Model) string {
	switch m {
	case domain.ModelWeek:
		return "weekSchedule"
	case domain.ModelCustom:
		return "customSchedule"
	default:
		return "unavailableDates"
	}
}

type CreateScheduleRequest struct {
	BarbershopID     uint               `json:"barberShopId" binding:"required"`
	Model            string             `json:"model" binding:"required,oneof=week custom unavailable" enums:"week,custom,unavailable"`
	WeekSchedule     []WeekDayRequest   `json:"weekSchedule" binding:"omitempty,dive"`
	CustomSchedule   []CustomDayRequest `json:"customSchedule" binding:"omitempty,dive"`
	UnavailableDates []string           `json:"unavailableDates" binding:"omitempty,dive,isodate"`
	Periods          json.RawMessage    `json:"periods" swaggerignore:"true"`
}

func (r CreateScheduleRequest) toVariant() (domain.Variant, error) {
	payload := variantPayload{
		WeekSchedule:     r.WeekSchedule,
		CustomSchedule:   r.CustomSchedule,
		UnavailableDates: r.UnavailableDates,
		Periods:          r.Periods,
	}
	return payload.variant(domain.Model(r.Model))
}

type UpdateScheduleRequest struct {
	BarbershopID     *uint              `json:"barberShopId" binding:"omitempty,min=1"`
	Model            *string            `json:"model" binding:"omitempty,oneof=week custom unavailable" enums:"week,custom,unavailable"`
	WeekSchedule     []WeekDayRequest   `json:"weekSchedule" binding:"omitempty,dive"`
	CustomSchedule   []CustomDayRequest `json:"customSchedule" binding:"omitempty,dive"`
	UnavailableDates []string           `json:"unavailableDates" binding:"omitempty,dive,isodate"`
	Periods          json.RawMessage    `json:"periods" swaggerignore:"true"`
}

// replacement returns the variant to store, or nil when no payload was sent.
func (r UpdateScheduleRequest) replacement() (domain.Variant, error) {
	payload := variantPayload{
		WeekSchedule:     r.WeekSchedule,
		CustomSchedule:   r.CustomSchedule,
		UnavailableDates: r.UnavailableDates,
		Periods:          r.Periods,
	}

	sent := payload.present()
	switch {
	case r.Model != nil:
		if len(sent) == 0 && r.Periods == nil {
			return nil, nil
		}
		return payload.variant(domain.Model(*r.Model))
	case len(sent) > 0:
		return payload.variant(sent[0])
	case r.Periods != nil:
		return nil, httperr.ErrInvalidFields(map[string]string{
			"periods": "not allowed; send periods per entry under weekSchedule or customSchedule",
		})
	}
	return nil, nil
}

type ScheduleListQuery struct {
	Model        string `form:"model" binding:"omitempty,oneof=week custom unavailable"`
	BarbershopID uint   `form:"barberShopId"`
}

// ======================================================
// RESPONSE SHAPES
// ======================================================

type PeriodResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`
}

type WeekDayResponse struct {
	DayOfWeek int              `json:"dayOfWeek"`
	Periods   []PeriodResponse `json:"periods"`
}

type CustomDayResponse struct {
	Date    string           `json:"date"`
	Periods []PeriodResponse `json:"periods"`
}

type ScheduleBase struct {
	ID           uint      `json:"id"`
	BarbershopID uint      `json:"barberShopId"`
	Model        string    `json:"model"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type WeekScheduleResponse struct {
	ScheduleBase
	WeekSchedule []WeekDayResponse `json:"weekSchedule"`
}

type CustomScheduleResponse struct {
	ScheduleBase
	CustomSchedule []CustomDayResponse `json:"customSchedule"`
}

type UnavailableScheduleResponse struct {
	ScheduleBase
	UnavailableDates []string `json:"unavailableDates"`
}

// toScheduleResponse serialises s with exactly the key of its own variant.
func toScheduleResponse(s domain.Schedule) any {
	base := ScheduleBase{
		ID:           s.ID,
		BarbershopID: s.BarbershopID,
		Model:        string(s.Model()),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}

	switch v := s.Variant.(type) {
	case domain.WeekVariant:
		days := make([]WeekDayResponse, 0, len(v.Days))
		for _, d := range v.Days {
			days = append(days, WeekDayResponse{DayOfWeek: int(d.DayOfWeek), Periods: toPeriodResponses(d.Periods)})
		}
		return WeekScheduleResponse{ScheduleBase: base, WeekSchedule: days}

	case domain.CustomVariant:
		days := make([]CustomDayResponse, 0, len(v.Days))
		for _, d := range v.Days {
			days = append(days, CustomDayResponse{Date: formatDate(d.Date), Periods: toPeriodResponses(d.Periods)})
		}
		return CustomScheduleResponse{ScheduleBase: base, CustomSchedule: days}

	case domain.UnavailableVariant:
		return UnavailableScheduleResponse{ScheduleBase: base, UnavailableDates: formatDates(v.Dates)}
	}

	panic(fmt.Sprintf("schedule %d has no variant", s.ID))
}

func toPeriodResponses(ps []domain.Period) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, PeriodResponse{StartTime: p.Start.String(), EndTime: p.End.String(), Duration: p.Duration})
	}
	return out
}
