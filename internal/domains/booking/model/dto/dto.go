package dto

import (
	"time"

	"github.com/google/uuid"

	"nautica/internal/domains/booking/model"
	"nautica/shared"
	"nautica/shared/constant"
	gDto "nautica/shared/dto"
	gModel "nautica/shared/model"
	"nautica/shared/money"
	"nautica/shared/timezone"
)

type CreateBookingRequest struct {
	BoatID      string `json:"boat_id"      validate:"required,uuid"`
	BookingDate string `json:"booking_date" validate:"required,calendardate"`
	Passengers  int    `json:"passengers"   validate:"omitempty,min=1"`
	Notes       string `json:"notes"        validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(user string, base, discount, total, deposit money.Money) (model.Booking, error) {
	bookingDate, err := timezone.ParseCalendarDate(c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	passengers := c.Passengers
	if passengers == 0 {
		passengers = 1
	}

	return model.Booking{
		ID:             uuid.NewString(),
		UserID:         user,
		BoatID:         c.BoatID,
		BookingDate:    bookingDate,
		Passengers:     passengers,
		BasePrice:      base,
		DiscountAmount: discount,
		TotalPrice:     total,
		DepositAmount:  deposit,
		Status:         model.StatusPending,
		Notes:          c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BookingResponse struct {
	ID             string      `json:"id"`
	UserID         string      `json:"user_id"`
	BoatID         string      `json:"boat_id"`
	BookingDate    string      `json:"booking_date"`
	Passengers     int         `json:"passengers"`
	BasePrice      money.Money `json:"base_price"`
	DiscountAmount money.Money `json:"discount_amount"`
	TotalPrice     money.Money `json:"total_price"`
	DepositAmount  money.Money `json:"deposit_amount"`
	Status         string      `json:"status"`
	CheckInAt      *time.Time  `json:"check_in_at,omitempty"`
	CheckOutAt     *time.Time  `json:"check_out_at,omitempty"`
	CancelledAt    *time.Time  `json:"cancelled_at,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.BoatID = model.BoatID
	r.BookingDate = model.BookingDate.Format(constant.CalendarDateFormat)
	r.Passengers = model.Passengers
	r.BasePrice = model.BasePrice
	r.DiscountAmount = model.DiscountAmount
	r.TotalPrice = model.TotalPrice
	r.DepositAmount = model.DepositAmount
	r.Status = model.Status
	r.CheckInAt = model.CheckInAt
	r.CheckOutAt = model.CheckOutAt
	r.CancelledAt = model.CancelledAt
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

// CreateBookingResult distinguishes a fresh reservation from an idempotent
// replay: a duplicate request returns the existing booking, not an error.
type CreateBookingResult struct {
	Booking   BookingResponse `json:"booking"`
	Duplicate bool            `json:"duplicate"`
}

// CheckInResult reports whether this call performed the check-in or found
// it already done.
type CheckInResult struct {
	Already bool `json:"already"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published on lifecycle transitions. The
// completed event feeds downstream loyalty accounting.
type BookingEvent struct {
	Event      string    `json:"event"`
	BookingID  string    `json:"booking_id"`
	UserID     string    `json:"user_id"`
	BoatID     string    `json:"boat_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
