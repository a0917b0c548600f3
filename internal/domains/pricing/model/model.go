package model

import (
	"nautica/shared/model"
	"time"
)

const (
	TableName  = "pricing_rules"
	EntityName = "pricing_rule"

	FieldID        = "id"
	FieldBoatID    = "boat_id"
	FieldKind      = "kind"
	FieldModifier  = "modifier"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldDayOfWeek = "day_of_week"
	FieldActive    = "active"
)

const (
	KindWeekday    = "weekday"
	KindWeekend    = "weekend"
	KindHoliday    = "holiday"
	KindHighSeason = "high_season"
	KindLowSeason  = "low_season"
	KindSpecial    = "special"
)

// PricingRule scales a boat's base daily price with a multiplicative
// modifier. Modifiers never compose: when several rules match one day the
// highest modifier wins.
type PricingRule struct {
	ID        string     `db:"id"`
	BoatID    string     `db:"boat_id"`
	Kind      string     `db:"kind"`
	Modifier  float64    `db:"modifier"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	DayOfWeek *int       `db:"day_of_week"`
	Active    bool       `db:"active"`
	model.Metadata
}
