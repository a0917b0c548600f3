package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nautica/config"
	"nautica/infras/otel/mocks"
	boatMocks "nautica/internal/domains/boat/mocks"
	boatModel "nautica/internal/domains/boat/model"
	bookingMocks "nautica/internal/domains/booking/mocks"
	"nautica/internal/domains/booking/model"
	"nautica/internal/domains/booking/model/dto"
	"nautica/internal/domains/booking/service"
	paymentServiceMocks "nautica/internal/domains/payment/service/mocks"
	pricingDto "nautica/internal/domains/pricing/model/dto"
	pricingServiceMocks "nautica/internal/domains/pricing/service/mocks"
	"nautica/shared/constant"
	gDto "nautica/shared/dto"
	"nautica/shared/failure"
	"nautica/shared/money"
)

type bookingMockSet struct {
	repo     *bookingMocks.MockBooking
	boatRepo *boatMocks.MockBoat
	pricing  *pricingServiceMocks.MockPricing
	escrow   *paymentServiceMocks.MockEscrow
}

func newBookingService(t *testing.T) (service.Booking, *bookingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	set := &bookingMockSet{
		repo:     bookingMocks.NewMockBooking(ctrl),
		boatRepo: boatMocks.NewMockBoat(ctrl),
		pricing:  pricingServiceMocks.NewMockPricing(ctrl),
		escrow:   paymentServiceMocks.NewMockEscrow(ctrl),
	}

	// Event publishing stays off so no broker expectations are needed.
	cfg := &config.Config{}

	svc := service.New(set.repo, set.boatRepo, set.pricing, set.escrow, nil, cfg, mocks.NewOtel())

	return svc, set
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestBookingService_Create(t *testing.T) {
	activeBoat := boatModel.Boat{
		ID:             "boat-1",
		Active:         true,
		BasePriceDaily: money.FromCents(100000),
		DepositAmount:  money.FromCents(30000),
	}

	quote := pricingDto.Breakdown{
		PriceBeforeDiscount: money.FromCents(120000),
		DiscountAmount:      money.FromCents(0),
		Total:               money.FromCents(120000),
	}

	req := dto.CreateBookingRequest{
		BoatID:      "boat-1",
		BookingDate: "2099-01-04",
		Passengers:  4,
	}

	t.Run("creates a pending booking", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.boatRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBoat, nil)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		set.pricing.EXPECT().
			QuoteBoatDay(gomock.Any(), "boat-1", activeBoat.BasePriceDaily, gomock.Any(), "renter-1").
			Return(quote, nil)

		set.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, model.StatusPending, booking.Status)
				assert.Equal(t, "renter-1", booking.UserID)
				assert.Equal(t, int64(120000), booking.TotalPrice.Cents())
				assert.Equal(t, int64(30000), booking.DepositAmount.Cents())

				return nil
			})

		res, err := svc.Create(authedCtx("renter-1"), req)

		assert.NoError(t, err)
		assert.False(t, res.Duplicate)
		assert.Equal(t, model.StatusPending, res.Booking.Status)
	})

	t.Run("replaying an active boat-day returns the existing booking", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.boatRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBoat, nil)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "booking-1", UserID: "renter-1", Status: model.StatusConfirmed}, nil)

		res, err := svc.Create(authedCtx("renter-1"), req)

		assert.NoError(t, err)
		assert.True(t, res.Duplicate)
		assert.Equal(t, "booking-1", res.Booking.ID)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		svc, _ := newBookingService(t)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("past booking date", func(t *testing.T) {
		svc, _ := newBookingService(t)

		past := req
		past.BookingDate = "2020-01-01"

		_, err := svc.Create(authedCtx("renter-1"), past)

		assert.EqualError(t, err, "booking date must be today or later")
	})

	t.Run("unparseable booking date", func(t *testing.T) {
		svc, _ := newBookingService(t)

		bad := req
		bad.BookingDate = "04/01/2099"

		_, err := svc.Create(authedCtx("renter-1"), bad)

		assert.EqualError(t, err, "invalid booking date")
	})

	t.Run("inactive boat reads as missing", func(t *testing.T) {
		svc, set := newBookingService(t)

		inactive := activeBoat
		inactive.Active = false

		set.boatRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(inactive, nil)

		_, err := svc.Create(authedCtx("renter-1"), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_CheckIn(t *testing.T) {
	confirmed := model.Booking{
		ID:     "booking-1",
		UserID: "renter-1",
		BoatID: "boat-1",
		Status: model.StatusConfirmed,
	}

	t.Run("captures the hold then opens the rental", func(t *testing.T) {
		svc, set := newBookingService(t)

		gomock.InOrder(
			set.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(confirmed, nil),
			set.escrow.EXPECT().
				CaptureHeld(gomock.Any(), "booking-1").
				Return(nil),
			set.repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(int64(1), nil),
		)

		res, err := svc.CheckIn(authedCtx("renter-1"), "booking-1")

		assert.NoError(t, err)
		assert.False(t, res.Already)
	})

	t.Run("repeated check-in is acknowledged without touching the processor", func(t *testing.T) {
		svc, set := newBookingService(t)

		checkedIn := confirmed
		checkedIn.Status = model.StatusInProgress
		now := time.Now()
		checkedIn.CheckInAt = &now

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(checkedIn, nil)

		res, err := svc.CheckIn(authedCtx("renter-1"), "booking-1")

		assert.NoError(t, err)
		assert.True(t, res.Already)
	})

	t.Run("losing the status race is also an acknowledgment", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmed, nil)

		set.escrow.EXPECT().
			CaptureHeld(gomock.Any(), "booking-1").
			Return(nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		res, err := svc.CheckIn(authedCtx("renter-1"), "booking-1")

		assert.NoError(t, err)
		assert.True(t, res.Already)
	})

	t.Run("unconfirmed booking cannot check in", func(t *testing.T) {
		svc, set := newBookingService(t)

		pending := confirmed
		pending.Status = model.StatusPending

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pending, nil)

		_, err := svc.CheckIn(authedCtx("renter-1"), "booking-1")

		assert.EqualError(t, err, "booking is not confirmed")
	})

	t.Run("capture failure blocks the transition", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmed, nil)

		set.escrow.EXPECT().
			CaptureHeld(gomock.Any(), "booking-1").
			Return(failure.PaymentNotReady("payment is not held yet"))

		_, err := svc.CheckIn(authedCtx("renter-1"), "booking-1")

		assert.EqualError(t, err, "payment is not held yet")
	})

	t.Run("someone else's booking reads as missing", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmed, nil)

		_, err := svc.CheckIn(authedCtx("other-user"), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("admin may act on any booking", func(t *testing.T) {
		svc, set := newBookingService(t)

		ctx := context.WithValue(authedCtx("admin-1"), constant.ContextKeyUserRole, constant.RoleAdmin)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmed, nil)

		set.escrow.EXPECT().
			CaptureHeld(gomock.Any(), "booking-1").
			Return(nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		res, err := svc.CheckIn(ctx, "booking-1")

		assert.NoError(t, err)
		assert.False(t, res.Already)
	})
}

func TestBookingService_Complete(t *testing.T) {
	inProgress := model.Booking{
		ID:     "booking-1",
		UserID: "renter-1",
		BoatID: "boat-1",
		Status: model.StatusInProgress,
	}

	t.Run("closes an in-progress rental", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(inProgress, nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		assert.NoError(t, svc.Complete(authedCtx("renter-1"), "booking-1"))
	})

	t.Run("guard rejects any other state", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(inProgress, nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		err := svc.Complete(authedCtx("renter-1"), "booking-1")

		assert.EqualError(t, err, "booking is not in progress")
	})
}

func TestBookingService_Cancel(t *testing.T) {
	pending := model.Booking{
		ID:     "booking-1",
		UserID: "renter-1",
		BoatID: "boat-1",
		Status: model.StatusPending,
	}

	t.Run("cancels a pending booking", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pending, nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		assert.NoError(t, svc.Cancel(authedCtx("renter-1"), "booking-1", "change of plans"))
	})

	t.Run("completed bookings are past cancelling", func(t *testing.T) {
		svc, set := newBookingService(t)

		completed := pending
		completed.Status = model.StatusCompleted

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(completed, nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		err := svc.Cancel(authedCtx("renter-1"), "booking-1", "")

		assert.EqualError(t, err, "booking can no longer be cancelled")
	})
}

func TestBookingService_GetMine(t *testing.T) {
	svc, set := newBookingService(t)

	set.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	set.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{{ID: "b1", UserID: "renter-1"}, {ID: "b2", UserID: "renter-1"}}, nil)

	res, err := svc.GetMine(authedCtx("renter-1"), gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 2, res.TotalData)
}
