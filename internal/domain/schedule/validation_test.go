package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

func period(start, end string, duration int) Period {
	s, _ := ParseClock(start)
	e, _ := ParseClock(end)
	return Period{Start: s, End: e, Duration: duration}
}

func details(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindValidation, be.Kind)
	return be.Details
}

func TestValidate_WeekRequiresPeriods(t *testing.T) {
	d := details(t, Validate(WeekVariant{}))
	assert.Contains(t, d, "weekSchedule")

	d = details(t, Validate(WeekVariant{Days: []WeekDay{{DayOfWeek: time.Monday}}}))
	assert.Contains(t, d, "weekSchedule[0].periods")
}

func TestValidate_WeekWithOnePeriod(t *testing.T) {
	v := WeekVariant{Days: []WeekDay{{
		DayOfWeek: time.Monday,
		Periods:   []Period{period("09:00", "12:00", 30)},
	}}}
	assert.NoError(t, Validate(v))
}

func TestValidate_CustomRequiresPeriods(t *testing.T) {
	d := details(t, Validate(CustomVariant{}))
	assert.Contains(t, d, "customSchedule")

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, Validate(CustomVariant{Days: []CustomDay{{
		Date:    date,
		Periods: []Period{period("10:00", "11:00", 60)},
	}}}))
}

func TestValidate_UnavailableNeedsNothing(t *testing.T) {
	assert.NoError(t, Validate(UnavailableVariant{}))
	assert.NoError(t, Validate(UnavailableVariant{Dates: []time.Time{
		time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
	}}))
}

func TestValidate_PeriodShape(t *testing.T) {
	v := WeekVariant{Days: []WeekDay{{
		DayOfWeek: time.Tuesday,
		Periods: []Period{
			period("12:00", "09:00", 30),
			period("09:00", "10:00", 0),
			period("09:00", "10:00", 90),
		},
	}}}
	d := details(t, Validate(v))
	assert.Contains(t, d, "weekSchedule[0].periods[0].endTime")
	assert.Contains(t, d, "weekSchedule[0].periods[1].duration")
	assert.Contains(t, d, "weekSchedule[0].periods[2].duration")
}

func TestValidate_Duplicates(t *testing.T) {
	p := []Period{period("09:00", "10:00", 30)}
	d := details(t, Validate(WeekVariant{Days: []WeekDay{
		{DayOfWeek: time.Friday, Periods: p},
		{DayOfWeek: time.Friday, Periods: p},
		{DayOfWeek: 9, Periods: p},
	}}))
	assert.Contains(t, d, "weekSchedule[1].dayOfWeek")
	assert.Contains(t, d, "weekSchedule[2].dayOfWeek")

	xmas := time.Date(2025, 12, 25, 15, 0, 0, 0, time.UTC)
	d = details(t, Validate(UnavailableVariant{Dates: []time.Time{xmas, DateOnly(xmas)}}))
	assert.Contains(t, d, "unavailableDates[1]")
}

func TestValidate_NilVariant(t *testing.T) {
	d := details(t, Validate(nil))
	assert.Contains(t, d, "model")
}

func TestClock(t *testing.T) {
	c, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, Clock(545), c)
	assert.Equal(t, "09:05", c.String())

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel("custom")
	require.NoError(t, err)
	assert.Equal(t, ModelCustom, m)

	_, err = ParseModel("monthly")
	assert.Error(t, err)
}
