package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/pagination"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *ScheduleGormRepository) Create(ctx context.Context, s *domain.Schedule) error {
	if s.Variant == nil {
		return fmt.Errorf("schedule without variant")
	}

	row := models.Schedule{
		BarbershopID: s.BarbershopID,
		Model:        string(s.Model()),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return insertVariant(tx, row.ID, s.Variant)
	})
	if err != nil {
		return translate(err)
	}

	s.ID = row.ID
	s.CreatedAt = row.CreatedAt
	s.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ScheduleGormRepository) Update(
	ctx context.Context,
	s *domain.Schedule,
	replace domain.Variant,
) error {

	var row models.Schedule
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, s.ID).Error; err != nil {
			return err
		}

		if replace != nil && string(replace.Model()) != row.Model {
			return fmt.Errorf("variant %s does not match schedule model %s", replace.Model(), row.Model)
		}

		row.BarbershopID = s.BarbershopID
		row.UpdatedAt = time.Now()
		if err := tx.Save(&row).Error; err != nil {
			return err
		}

		if replace == nil {
			return nil
		}
		if err := deleteVariantRows(tx, []uint{row.ID}); err != nil {
			return err
		}
		return insertVariant(tx, row.ID, replace)
	})
	if err != nil {
		return translate(err)
	}

	if replace != nil {
		s.Variant = replace
	}
	s.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ScheduleGormRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteVariantRows(tx, []uint{id}); err != nil {
			return err
		}
		res := tx.Delete(&models.Schedule{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err)
}

func deleteVariantRows(tx *gorm.DB, scheduleIDs []uint) error {
	for _, child := range []any{&models.WeekPeriod{}, &models.CustomPeriod{}, &models.UnavailableDate{}} {
		if err := tx.Where("schedule_id IN ?", scheduleIDs).Delete(child).Error; err != nil {
			return err
		}
	}
	return nil
}

func insertVariant(tx *gorm.DB, scheduleID uint, v domain.Variant) error {
	switch v := v.(type) {
	case domain.WeekVariant:
		var rows []models.WeekPeriod
		for _, day := range v.Days {
			for i, p := range day.Periods {
				rows = append(rows, models.WeekPeriod{
					ScheduleID: scheduleID,
					DayOfWeek:  int(day.DayOfWeek),
					Position:   i,
					StartTime:  toTime(p.Start),
					EndTime:    toTime(p.End),
					Duration:   p.Duration,
				})
			}
		}
		return createRows(tx, rows)

	case domain.CustomVariant:
		var rows []models.CustomPeriod
		for _, day := range v.Days {
			for i, p := range day.Periods {
				rows = append(rows, models.CustomPeriod{
					ScheduleID: scheduleID,
					Date:       datatypes.Date(domain.DateOnly(day.Date)),
					Position:   i,
					StartTime:  toTime(p.Start),
					EndTime:    toTime(p.End),
					Duration:   p.Duration,
				})
			}
		}
		return createRows(tx, rows)

	case domain.UnavailableVariant:
		var rows []models.UnavailableDate
		for _, d := range v.Dates {
			rows = append(rows, models.UnavailableDate{
				ScheduleID: scheduleID,
				Date:       datatypes.Date(domain.DateOnly(d)),
			})
		}
		return createRows(tx, rows)
	}

	return fmt.Errorf("unsupported schedule variant %T", v)
}

func createRows[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(&rows, 200).Error
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ScheduleGormRepository) Get(ctx context.Context, id uint) (*domain.Schedule, error) {
	var row models.Schedule
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate(err)
	}

	out, err := r.assemble(ctx, []models.Schedule{row})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (r *ScheduleGormRepository) List(
	ctx context.Context,
	f domain.Filter,
	p pagination.Params,
) ([]domain.Schedule, int64, error) {

	rows, total, err := crud[models.Schedule]{db: r.db}.list(ctx, p, func(q *gorm.DB) *gorm.DB {
		if f.Model != "" {
			q = q.Where("model = ?", string(f.Model))
		}
		if f.BarbershopID != 0 {
			q = q.Where("barbershop_id = ?", f.BarbershopID)
		}
		return q
	})
	if err != nil {
		return nil, 0, err
	}

	out, err := r.assemble(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// assemble loads, for every row, the child rows of that row's own model and
// nothing else.
func (r *ScheduleGormRepository) assemble(ctx context.Context, rows []models.Schedule) ([]domain.Schedule, error) {
	idsByModel := map[domain.Model][]uint{}
	for _, row := range rows {
		m := domain.Model(row.Model)
		idsByModel[m] = append(idsByModel[m], row.ID)
	}

	db := r.db.WithContext(ctx)

	week := map[uint][]models.WeekPeriod{}
	if ids := idsByModel[domain.ModelWeek]; len(ids) > 0 {
		var periods []models.WeekPeriod
		if err := db.
			Where("schedule_id IN ?", ids).
			Order("schedule_id ASC, day_of_week ASC, position ASC").
			Find(&periods).Error; err != nil {
			return nil, err
		}
		for _, wp := range periods {
			week[wp.ScheduleID] = append(week[wp.ScheduleID], wp)
		}
	}

	custom := map[uint][]models.CustomPeriod{}
	if ids := idsByModel[domain.ModelCustom]; len(ids) > 0 {
		var periods []models.CustomPeriod
		if err := db.
			Where("schedule_id IN ?", ids).
			Order("schedule_id ASC, date ASC, position ASC").
			Find(&periods).Error; err != nil {
			return nil, err
		}
		for _, cp := range periods {
			custom[cp.ScheduleID] = append(custom[cp.ScheduleID], cp)
		}
	}

	unavailable := map[uint][]models.UnavailableDate{}
	if ids := idsByModel[domain.ModelUnavailable]; len(ids) > 0 {
		var dates []models.UnavailableDate
		if err := db.
			Where("schedule_id IN ?", ids).
			Order("schedule_id ASC, date ASC").
			Find(&dates).Error; err != nil {
			return nil, err
		}
		for _, ud := range dates {
			unavailable[ud.ScheduleID] = append(unavailable[ud.ScheduleID], ud)
		}
	}

	out := make([]domain.Schedule, 0, len(rows))
	for _, row := range rows {
		s := domain.Schedule{
			ID:           row.ID,
			BarbershopID: row.BarbershopID,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		}

		switch domain.Model(row.Model) {
		case domain.ModelWeek:
			s.Variant = weekFromRows(week[row.ID])
		case domain.ModelCustom:
			s.Variant = customFromRows(custom[row.ID])
		case domain.ModelUnavailable:
			s.Variant = unavailableFromRows(unavailable[row.ID])
		default:
			return nil, fmt.Errorf("schedule %d has unknown model %q", row.ID, row.Model)
		}

		out = append(out, s)
	}
	return out, nil
}

func weekFromRows(rows []models.WeekPeriod) domain.WeekVariant {
	var v domain.WeekVariant
	for _, wp := range rows {
		n := len(v.Days)
		if n == 0 || int(v.Days[n-1].DayOfWeek) != wp.DayOfWeek {
			v.Days = append(v.Days, domain.WeekDay{DayOfWeek: time.Weekday(wp.DayOfWeek)})
			n++
		}
		v.Days[n-1].Periods = append(v.Days[n-1].Periods, domain.Period{
			Start:    fromTime(wp.StartTime),
			End:      fromTime(wp.EndTime),
			Duration: wp.Duration,
		})
	}
	return v
}

func customFromRows(rows []models.CustomPeriod) domain.CustomVariant {
	var v domain.CustomVariant
	for _, cp := range rows {
		date := domain.DateOnly(time.Time(cp.Date))
		n := len(v.Days)
		if n == 0 || !v.Days[n-1].Date.Equal(date) {
			v.Days = append(v.Days, domain.CustomDay{Date: date})
			n++
		}
		v.Days[n-1].Periods = append(v.Days[n-1].Periods, domain.Period{
			Start:    fromTime(cp.StartTime),
			End:      fromTime(cp.EndTime),
			Duration: cp.Duration,
		})
	}
	return v
}

func unavailableFromRows(rows []models.UnavailableDate) domain.UnavailableVariant {
	var v domain.UnavailableVariant
	for _, ud := range rows {
		v.Dates = append(v.Dates, domain.DateOnly(time.Time(ud.Date)))
	}
	return v
}

func toTime(c domain.Clock) datatypes.Time {
	return datatypes.NewTime(c.Hour(), c.Minute(), 0, 0)
}

func fromTime(t datatypes.Time) domain.Clock {
	return domain.Clock(time.Duration(t) / time.Minute)
}

var _ domain.Repository = (*ScheduleGormRepository)(nil)
