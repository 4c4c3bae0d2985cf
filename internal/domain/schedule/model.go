package schedule

import (
	"fmt"
	"time"
)

// Model is the discriminator stored on every schedule row.
type Model string

const (
	ModelWeek        Model = "week"
	ModelCustom      Model = "custom"
	ModelUnavailable Model = "unavailable"
)

func ParseModel(s string) (Model, error) {
	switch m := Model(s); m {
	case ModelWeek, ModelCustom, ModelUnavailable:
		return m, nil
	}
	return "", fmt.Errorf("unknown schedule model %q", s)
}

// Clock is a time of day in minutes after midnight.
type Clock int

const clockLayout = "15:04"

func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, err
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Period is one availability window. Duration is the slot length in minutes.
type Period struct {
	Start    Clock
	End      Clock
	Duration int
}

type WeekDay struct {
	DayOfWeek time.Weekday
	Periods   []Period
}

type CustomDay struct {
	Date    time.Time
	Periods []Period
}

// Variant is the closed set of schedule shapes. Exactly one of WeekVariant,
// CustomVariant or UnavailableVariant backs a schedule.
type Variant interface {
	Model() Model
	isVariant()
}

type WeekVariant struct {
	Days []WeekDay
}

type CustomVariant struct {
	Days []CustomDay
}

type UnavailableVariant struct {
	Dates []time.Time
}

func (WeekVariant) Model() Model        { return ModelWeek }
func (CustomVariant) Model() Model      { return ModelCustom }
func (UnavailableVariant) Model() Model { return ModelUnavailable }

func (WeekVariant) isVariant()        {}
func (CustomVariant) isVariant()      {}
func (UnavailableVariant) isVariant() {}

type Schedule struct {
	ID           uint
	BarbershopID uint
	Variant      Variant
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s *Schedule) Model() Model {
	if s.Variant == nil {
		return ""
	}
	return s.Variant.Model()
}

// Filter narrows a schedule listing. Zero values mean "any".
type Filter struct {
	Model        Model
	BarbershopID uint
}

// DateOnly drops the clock part of t, keeping the calendar day in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
