package model

import (
	"time"

	"nautica/shared/model"
)

const (
	TableName  = "availability_blocks"
	EntityName = "availability_block"

	FieldID        = "id"
	FieldBoatID    = "boat_id"
	FieldBlockDate = "block_date"
	FieldAvailable = "available"
	FieldSource    = "source"
)

const (
	SourceManual   = "manual"
	SourceExternal = "external"
)

// AvailabilityBlock marks one boat-day as unavailable when Available is
// false. Rows with Available true are informational overrides and do not
// unblock a day held by a booking.
type AvailabilityBlock struct {
	ID        string    `db:"id"`
	BoatID    string    `db:"boat_id"`
	BlockDate time.Time `db:"block_date"`
	Available bool      `db:"available"`
	Source    string    `db:"source"`
	model.Metadata
}
