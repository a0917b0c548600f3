package dto

import (
	"time"

	"nautica/internal/domains/payment/model"
	gDto "nautica/shared/dto"
	"nautica/shared/money"
)

// CheckoutSessionResponse carries the hosted payment page for one booking.
type CheckoutSessionResponse struct {
	PaymentID string      `json:"payment_id"`
	BookingID string      `json:"booking_id"`
	Amount    money.Money `json:"amount"`
	URL       string      `json:"url"`
}

type PaymentResponse struct {
	ID          string      `json:"id"`
	BookingID   string      `json:"booking_id"`
	Amount      money.Money `json:"amount"`
	PlatformFee money.Money `json:"platform_fee"`
	OwnerAmount money.Money `json:"owner_amount"`
	Status      string      `json:"status"`
	HeldAt      *time.Time  `json:"held_at,omitempty"`
	ReleasedAt  *time.Time  `json:"released_at,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.PlatformFee = model.PlatformFee
	r.OwnerAmount = model.OwnerAmount
	r.Status = model.Status
	r.HeldAt = model.HeldAt
	r.ReleasedAt = model.ReleasedAt
	r.Metadata.FromModel(model.Metadata)
}

// PaymentEvent is the payload published on escrow transitions.
type PaymentEvent struct {
	Event      string      `json:"event"`
	PaymentID  string      `json:"payment_id"`
	BookingID  string      `json:"booking_id"`
	Amount     money.Money `json:"amount"`
	Status     string      `json:"status"`
	OccurredAt time.Time   `json:"occurred_at"`
}
