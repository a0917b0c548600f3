package dto

import (
	boatDto "nautica/internal/domains/boat/model/dto"
	"nautica/shared/money"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

const (
	RichContentBoatCard        = "boat_card"
	RichContentBoatCarousel    = "boat_carousel"
	RichContentBookingCalendar = "booking_calendar"
	RichContentBookingSummary  = "booking_summary"
	RichContentQuickActions    = "quick_actions"
	RichContentPaymentLink     = "payment_link"
)

type Message struct {
	Role    string `json:"role"    validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Messages []Message `json:"messages" validate:"required,min=1,dive"`
	OwnerID  string    `json:"ownerId"  validate:"omitempty,uuid"`
}

// LatestUserText returns the content of the most recent user message.
func (r ChatRequest) LatestUserText() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == RoleUser {
			return r.Messages[i].Content
		}
	}

	return ""
}

type ChatResponse struct {
	Message AssistantMessage `json:"message"`
}

type AssistantMessage struct {
	Role        string       `json:"role"`
	Content     string       `json:"content"`
	RichContent *RichContent `json:"richContent,omitempty"`
}

type RichContent struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Rich content payloads mirror what the conversational front-end renders.

type BoatCardBoat struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Description  string          `json:"description,omitempty"`
	Capacity     int             `json:"capacity"`
	BasePrice    money.Money     `json:"base_price"`
	LengthMeters float64         `json:"length_meters,omitempty"`
	HasCrew      bool            `json:"has_crew,omitempty"`
	Photos       []BoatCardPhoto `json:"photos"`
}

type BoatCardPhoto struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}

type BoatCardData struct {
	Type string       `json:"type"`
	Boat BoatCardBoat `json:"boat"`
}

type BoatCarouselData struct {
	Type  string         `json:"type"`
	Title string         `json:"title,omitempty"`
	Boats []BoatCardBoat `json:"boats"`
}

type BookingCalendarData struct {
	Type           string   `json:"type"`
	BoatID         string   `json:"boatId"`
	BoatName       string   `json:"boatName"`
	AvailableDates []string `json:"availableDates"`
	BlockedDates   []string `json:"blockedDates"`
	SelectedDate   string   `json:"selectedDate,omitempty"`
}

type BookingSummaryBooking struct {
	BoatID        string      `json:"boatId"`
	BoatName      string      `json:"boatName"`
	Date          string      `json:"date"`
	Passengers    int         `json:"passengers"`
	BasePrice     money.Money `json:"basePrice"`
	TotalPrice    money.Money `json:"totalPrice"`
	DepositAmount money.Money `json:"depositAmount,omitempty"`
}

type BookingSummaryData struct {
	Type    string                `json:"type"`
	Booking BookingSummaryBooking `json:"booking"`
}

type QuickAction struct {
	Label   string `json:"label"`
	Action  string `json:"action"`
	Variant string `json:"variant,omitempty"`
}

type QuickActionsData struct {
	Type    string        `json:"type"`
	Actions []QuickAction `json:"actions"`
}

type PaymentLinkData struct {
	Type      string      `json:"type"`
	BookingID string      `json:"bookingId"`
	URL       string      `json:"url"`
	Amount    money.Money `json:"amount"`
	Note      string      `json:"note,omitempty"`
}

// BoatCardFromResponse flattens a boat read model into the card shape.
func BoatCardFromResponse(boat boatDto.BoatResponse) BoatCardBoat {
	photos := make([]BoatCardPhoto, len(boat.PhotoURLs))
	for i, url := range boat.PhotoURLs {
		photos[i] = BoatCardPhoto{URL: url, IsPrimary: i == 0}
	}

	return BoatCardBoat{
		ID:           boat.ID,
		Name:         boat.Name,
		Type:         boat.Category,
		Description:  boat.Description,
		Capacity:     boat.Capacity,
		BasePrice:    boat.BasePriceDaily,
		LengthMeters: boat.LengthMeters,
		HasCrew:      boat.HasCrew,
		Photos:       photos,
	}
}
