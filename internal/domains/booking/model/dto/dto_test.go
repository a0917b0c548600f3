package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nautica/internal/domains/booking/model"
	"nautica/internal/domains/booking/model/dto"
	gModel "nautica/shared/model"
	"nautica/shared/money"
	"nautica/shared/timezone"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		BoatID:      "550e8400-e29b-41d4-a716-446655440000",
		BookingDate: "2026-09-05",
		Passengers:  4,
		Notes:       "aniversário",
	}

	userID := "test-user-id"
	booking, err := req.ToModel(userID, money.FromCents(120000), money.FromCents(12000), money.FromCents(108000), money.FromCents(30000))

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.BoatID, booking.BoatID)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), booking.BookingDate)
	assert.Equal(t, 4, booking.Passengers)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, int64(108000), booking.TotalPrice.Cents())
	assert.Equal(t, userID, booking.CreatedBy)
	assert.Equal(t, userID, booking.ModifiedBy)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToModel_DefaultsPassengers(t *testing.T) {
	req := dto.CreateBookingRequest{
		BoatID:      "550e8400-e29b-41d4-a716-446655440000",
		BookingDate: "2026-09-05",
	}

	booking, err := req.ToModel("test-user-id", money.FromCents(100000), money.FromCents(0), money.FromCents(100000), money.FromCents(0))

	assert.NoError(t, err)
	assert.Equal(t, 1, booking.Passengers)
}

func TestCreateBookingRequest_ToModel_RejectsBadDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		BoatID:      "550e8400-e29b-41d4-a716-446655440000",
		BookingDate: "05/09/2026",
	}

	_, err := req.ToModel("test-user-id", money.FromCents(0), money.FromCents(0), money.FromCents(0), money.FromCents(0))

	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	checkIn := time.Date(2026, 9, 5, 9, 30, 0, 0, time.UTC)

	bookingModel := model.Booking{
		ID:             "test-id",
		UserID:         "test-user",
		BoatID:         "test-boat",
		BookingDate:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Passengers:     2,
		BasePrice:      money.FromCents(120000),
		DiscountAmount: money.FromCents(12000),
		TotalPrice:     money.FromCents(108000),
		DepositAmount:  money.FromCents(30000),
		Status:         model.StatusInProgress,
		CheckInAt:      &checkIn,
		Notes:          "test notes",
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, "2026-09-05", response.BookingDate)
	assert.Equal(t, bookingModel.Status, response.Status)
	assert.Equal(t, bookingModel.TotalPrice, response.TotalPrice)
	assert.Equal(t, &checkIn, response.CheckInAt)
	assert.Nil(t, response.CheckOutAt)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: "test-id-1", Status: model.StatusPending},
		{ID: "test-id-2", Status: model.StatusCompleted},
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings, 15, 10)

	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, 15, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Equal(t, "test-id-1", response.Bookings[0].ID)
}
