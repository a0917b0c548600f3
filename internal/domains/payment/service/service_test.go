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
	"nautica/infras/stripe"
	stripeMocks "nautica/infras/stripe/mocks"
	boatMocks "nautica/internal/domains/boat/mocks"
	boatModel "nautica/internal/domains/boat/model"
	bookingMocks "nautica/internal/domains/booking/mocks"
	bookingModel "nautica/internal/domains/booking/model"
	ownerMocks "nautica/internal/domains/owner/mocks"
	ownerModel "nautica/internal/domains/owner/model"
	paymentMocks "nautica/internal/domains/payment/mocks"
	"nautica/internal/domains/payment/model"
	"nautica/internal/domains/payment/service"
	"nautica/shared/failure"
	"nautica/shared/money"
)

func TestSettlementAmount(t *testing.T) {
	withDeposit := bookingModel.Booking{
		TotalPrice:    money.FromCents(120000),
		DepositAmount: money.FromCents(30000),
	}
	assert.Equal(t, int64(30000), service.SettlementAmount(withDeposit).Cents())

	withoutDeposit := bookingModel.Booking{TotalPrice: money.FromCents(120000)}
	assert.Equal(t, int64(120000), service.SettlementAmount(withoutDeposit).Cents())
}

func TestSplitFee(t *testing.T) {
	tests := []struct {
		name         string
		amount       int64
		commission   float64
		wantPlatform int64
	}{
		{name: "round split", amount: 30000, commission: 15.0, wantPlatform: 4500},
		{name: "odd cents go to the owner", amount: 10001, commission: 15.0, wantPlatform: 1500},
		{name: "zero commission", amount: 30000, commission: 0, wantPlatform: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := money.FromCents(tt.amount)

			platformFee, ownerAmount := service.SplitFee(amount, tt.commission)

			assert.Equal(t, tt.wantPlatform, platformFee.Cents())
			assert.Equal(t, amount, platformFee.Add(ownerAmount))
		})
	}
}

type escrowMockSet struct {
	repo        *paymentMocks.MockPayment
	bookingRepo *bookingMocks.MockBooking
	boatRepo    *boatMocks.MockBoat
	ownerRepo   *ownerMocks.MockOwner
	processor   *stripeMocks.MockClient
}

func newEscrowService(t *testing.T) (service.Escrow, *escrowMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	set := &escrowMockSet{
		repo:        paymentMocks.NewMockPayment(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		boatRepo:    boatMocks.NewMockBoat(ctrl),
		ownerRepo:   ownerMocks.NewMockOwner(ctrl),
		processor:   stripeMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.BaseURL = "https://app.example.com"
	cfg.Marketplace.DefaultCommissionRate = 15.0
	cfg.Marketplace.CurrencyCode = "brl"

	svc := service.New(set.repo, set.bookingRepo, set.boatRepo, set.ownerRepo, set.processor, nil, cfg, mocks.NewOtel())

	return svc, set
}

func TestEscrowService_CreateCheckoutSession(t *testing.T) {
	booking := bookingModel.Booking{
		ID:            "booking-1",
		UserID:        "renter-1",
		BoatID:        "boat-1",
		BookingDate:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		TotalPrice:    money.FromCents(120000),
		DepositAmount: money.FromCents(30000),
		Status:        bookingModel.StatusPending,
	}

	boat := boatModel.Boat{ID: "boat-1", OwnerID: "owner-1", Name: "Veleiro Azul"}

	t.Run("holds the deposit through a manual-capture session", func(t *testing.T) {
		svc, set := newEscrowService(t)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		set.boatRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(boat, nil)

		set.ownerRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownerModel.Owner{ID: "owner-1", CommissionRate: 20.0}, nil)

		set.processor.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
				assert.Equal(t, int64(30000), params.Amount.Cents())
				assert.Equal(t, "Reserva 2026-09-05", params.Description)
				assert.Equal(t, "https://app.example.com/bookings/booking-1?payment=success", params.SuccessURL)

				return stripe.CheckoutSession{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil
			})

		set.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payment model.Payment) error {
				assert.Equal(t, model.StatusPending, payment.Status)
				assert.Equal(t, "cs_1", payment.ProviderSessionID)
				// Owner commission overrides the platform default.
				assert.Equal(t, int64(6000), payment.PlatformFee.Cents())
				assert.Equal(t, int64(24000), payment.OwnerAmount.Cents())

				return nil
			})

		res, err := svc.CreateCheckoutSession(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.BookingID)
		assert.Equal(t, int64(30000), res.Amount.Cents())
		assert.Equal(t, "https://pay.example.com/cs_1", res.URL)
	})

	t.Run("outstanding payment conflicts", func(t *testing.T) {
		svc, set := newEscrowService(t)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.CreateCheckoutSession(context.Background(), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("cancelled booking can no longer be paid", func(t *testing.T) {
		svc, set := newEscrowService(t)

		cancelled := booking
		cancelled.Status = bookingModel.StatusCancelled

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cancelled, nil)

		_, err := svc.CreateCheckoutSession(context.Background(), "booking-1")

		assert.EqualError(t, err, "booking can no longer be paid")
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, set := newEscrowService(t)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil)

		_, err := svc.CreateCheckoutSession(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("owner lookup failure falls back to the default commission", func(t *testing.T) {
		svc, set := newEscrowService(t)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		set.boatRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(boat, nil)

		set.ownerRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownerModel.Owner{}, assert.AnError)

		set.processor.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(stripe.CheckoutSession{ID: "cs_2", URL: "https://pay.example.com/cs_2"}, nil)

		set.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payment model.Payment) error {
				assert.Equal(t, int64(4500), payment.PlatformFee.Cents())

				return nil
			})

		_, err := svc.CreateCheckoutSession(context.Background(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("no local row without a processor session", func(t *testing.T) {
		svc, set := newEscrowService(t)

		set.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		set.boatRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(boat, nil)

		set.ownerRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownerModel.Owner{ID: "owner-1"}, nil)

		set.processor.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(stripe.CheckoutSession{}, assert.AnError)

		_, err := svc.CreateCheckoutSession(context.Background(), "booking-1")

		assert.Error(t, err)
	})
}

func TestEscrowService_CaptureHeld(t *testing.T) {
	held := model.Payment{
		ID:               "payment-1",
		BookingID:        "booking-1",
		ProviderIntentID: "pi_1",
		Status:           model.StatusHeld,
		Amount:           money.FromCents(30000),
	}

	t.Run("captures and releases the hold", func(t *testing.T) {
		svc, set := newEscrowService(t)

		gomock.InOrder(
			set.repo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]model.Payment{held}, nil),
			set.processor.EXPECT().
				CapturePaymentIntent(gomock.Any(), "pi_1").
				Return(nil),
			set.repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(int64(1), nil),
		)

		assert.NoError(t, svc.CaptureHeld(context.Background(), "booking-1"))
	})

	t.Run("no payment at all", func(t *testing.T) {
		svc, set := newEscrowService(t)

		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		err := svc.CaptureHeld(context.Background(), "booking-1")

		assert.EqualError(t, err, "payment is not held yet")
	})

	t.Run("pending payment is not capturable", func(t *testing.T) {
		svc, set := newEscrowService(t)

		pending := held
		pending.Status = model.StatusPending

		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Payment{pending}, nil)

		err := svc.CaptureHeld(context.Background(), "booking-1")

		assert.EqualError(t, err, "payment is not held yet")
	})

	t.Run("concurrent release is treated as success", func(t *testing.T) {
		svc, set := newEscrowService(t)

		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Payment{held}, nil)

		set.processor.EXPECT().
			CapturePaymentIntent(gomock.Any(), "pi_1").
			Return(nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		assert.NoError(t, svc.CaptureHeld(context.Background(), "booking-1"))
	})

	t.Run("processor capture failure keeps the hold", func(t *testing.T) {
		svc, set := newEscrowService(t)

		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Payment{held}, nil)

		set.processor.EXPECT().
			CapturePaymentIntent(gomock.Any(), "pi_1").
			Return(assert.AnError)

		assert.Error(t, svc.CaptureHeld(context.Background(), "booking-1"))
	})
}
