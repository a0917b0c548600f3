package model

import (
	"time"

	"nautica/shared/model"
	"nautica/shared/money"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldBoatID          = "boat_id"
	FieldBookingDate     = "booking_date"
	FieldPassengers      = "passengers"
	FieldBasePrice       = "base_price"
	FieldDiscountAmount  = "discount_amount"
	FieldTotalPrice      = "total_price"
	FieldDepositAmount   = "deposit_amount"
	FieldStatus          = "status"
	FieldCheckInAt       = "check_in_at"
	FieldCheckOutAt      = "check_out_at"
	FieldCancelledAt     = "cancelled_at"
	FieldCancelReason    = "cancel_reason"
	FieldNotes           = "notes"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusRefunded   = "refunded"
)

// ActiveStatuses are the states that hold a boat-day. A renter can have at
// most one booking in these states per (boat, date).
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed, StatusInProgress}
}

type Booking struct {
	ID             string      `db:"id"`
	UserID         string      `db:"user_id"`
	BoatID         string      `db:"boat_id"`
	BookingDate    time.Time   `db:"booking_date"`
	Passengers     int         `db:"passengers"`
	BasePrice      money.Money `db:"base_price"`
	DiscountAmount money.Money `db:"discount_amount"`
	TotalPrice     money.Money `db:"total_price"`
	DepositAmount  money.Money `db:"deposit_amount"`
	Status         string      `db:"status"`
	CheckInAt      *time.Time  `db:"check_in_at"`
	CheckOutAt     *time.Time  `db:"check_out_at"`
	CancelledAt    *time.Time  `db:"cancelled_at"`
	CancelReason   *string     `db:"cancel_reason"`
	Notes          string      `db:"notes"`
	model.Metadata
}

// IsActive reports whether the booking still holds its boat-day.
func (b Booking) IsActive() bool {
	switch b.Status {
	case StatusPending, StatusConfirmed, StatusInProgress:
		return true
	default:
		return false
	}
}
