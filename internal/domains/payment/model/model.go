package model

import (
	"time"

	"nautica/shared/model"
	"nautica/shared/money"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID                = "id"
	FieldBookingID         = "booking_id"
	FieldProviderSessionID = "provider_session_id"
	FieldProviderIntentID  = "provider_intent_id"
	FieldAmount            = "amount"
	FieldPlatformFee       = "platform_fee"
	FieldOwnerAmount       = "owner_amount"
	FieldStatus            = "status"
	FieldHeldAt            = "held_at"
	FieldReleasedAt        = "released_at"
	FieldRefundedAt        = "refunded_at"
)

// Escrow states. pending → held → released is the happy path; failed can
// be entered from pending or held, refunded is a terminal flag set by
// operations tooling.
const (
	StatusPending  = "pending"
	StatusHeld     = "held"
	StatusReleased = "released"
	StatusRefunded = "refunded"
	StatusFailed   = "failed"
)

// OutstandingStatuses are the states in which a payment still claims the
// booking's funds, blocking a second checkout session.
func OutstandingStatuses() []string {
	return []string{StatusPending, StatusHeld}
}

type Payment struct {
	ID                string      `db:"id"`
	BookingID         string      `db:"booking_id"`
	ProviderSessionID string      `db:"provider_session_id"`
	ProviderIntentID  string      `db:"provider_intent_id"`
	Amount            money.Money `db:"amount"`
	PlatformFee       money.Money `db:"platform_fee"`
	OwnerAmount       money.Money `db:"owner_amount"`
	Status            string      `db:"status"`
	HeldAt            *time.Time  `db:"held_at"`
	ReleasedAt        *time.Time  `db:"released_at"`
	RefundedAt        *time.Time  `db:"refunded_at"`
	model.Metadata
}
