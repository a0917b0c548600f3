package model

import (
	"nautica/shared/model"
	"nautica/shared/money"
)

const (
	TableName  = "boats"
	EntityName = "boat"

	FieldID             = "id"
	FieldOwnerID        = "owner_id"
	FieldName           = "name"
	FieldCategory       = "category"
	FieldDescription    = "description"
	FieldCapacity       = "capacity"
	FieldLengthMeters   = "length_meters"
	FieldHasCrew        = "has_crew"
	FieldBasePriceDaily = "base_price_daily"
	FieldDepositAmount  = "deposit_amount"
	FieldActive         = "active"
)

const (
	CategoryLeisureBoat = "leisure_boat"
	CategoryJetSki      = "jet_ski"
	CategoryYacht       = "yacht"
	CategorySailboat    = "sailboat"
	CategorySpeedboat   = "speedboat"
	CategoryFishingBoat = "fishing_boat"
	CategoryPontoon     = "pontoon"
	CategoryCatamaran   = "catamaran"
)

// Categories lists every recognized boat category.
func Categories() []string {
	return []string{
		CategoryLeisureBoat,
		CategoryJetSki,
		CategoryYacht,
		CategorySailboat,
		CategorySpeedboat,
		CategoryFishingBoat,
		CategoryPontoon,
		CategoryCatamaran,
	}
}

// Boat is never hard-deleted, listings are withdrawn by clearing the
// active flag so historical bookings keep their reference.
type Boat struct {
	ID             string      `db:"id"`
	OwnerID        string      `db:"owner_id"`
	Name           string      `db:"name"`
	Category       string      `db:"category"`
	Description    string      `db:"description"`
	Capacity       int         `db:"capacity"`
	LengthMeters   float64     `db:"length_meters"`
	HasCrew        bool        `db:"has_crew"`
	BasePriceDaily money.Money `db:"base_price_daily"`
	DepositAmount  money.Money `db:"deposit_amount"`
	Active         bool        `db:"active"`
	model.Metadata
}
