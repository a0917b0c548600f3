package model

import (
	"nautica/shared/model"
)

const (
	TableName  = "owners"
	EntityName = "owner"

	FieldID             = "id"
	FieldUserID         = "user_id"
	FieldMarinaName     = "marina_name"
	FieldSlug           = "slug"
	FieldCity           = "city"
	FieldState          = "state"
	FieldCommissionRate = "commission_rate"
	FieldVerified       = "verified"
	FieldActive         = "active"
)

type Owner struct {
	ID             string  `db:"id"`
	UserID         string  `db:"user_id"`
	MarinaName     string  `db:"marina_name"`
	Slug           string  `db:"slug"`
	City           string  `db:"city"`
	State          string  `db:"state"`
	CommissionRate float64 `db:"commission_rate"`
	Verified       bool    `db:"verified"`
	Active         bool    `db:"active"`
	model.Metadata
}

// Commission returns the platform take in percent, falling back to the
// marketplace default when the owner record carries none.
func (o Owner) Commission(defaultRate float64) float64 {
	if o.CommissionRate > 0 {
		return o.CommissionRate
	}

	return defaultRate
}
