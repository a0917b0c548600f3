package model

import (
	"nautica/shared/model"
)

const (
	TableName  = "loyalty_profiles"
	EntityName = "loyalty_profile"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldTotalRentals  = "total_rentals"
	FieldLoyaltyLevel  = "loyalty_level"
	FieldLoyaltyPoints = "loyalty_points"
)

// LoyaltyProfile is read-only inside this service. Completed-rental counts
// are maintained by a downstream consumer of booking.completed events.
type LoyaltyProfile struct {
	ID            string `db:"id"`
	UserID        string `db:"user_id"`
	TotalRentals  int    `db:"total_rentals"`
	LoyaltyLevel  string `db:"loyalty_level"`
	LoyaltyPoints int    `db:"loyalty_points"`
	model.Metadata
}
