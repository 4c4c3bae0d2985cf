package models

// All lists every table the API owns, in migration order.
func All() []any {
	return []any{
		&Barbershop{},
		&Barber{},
		&Hair{},
		&Review{},
		&Schedule{},
		&WeekPeriod{},
		&CustomPeriod{},
		&UnavailableDate{},
		&AuditLog{},
	}
}
