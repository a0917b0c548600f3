package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nautica/config"
	"nautica/infras/kafka"
	"nautica/infras/otel"
	"nautica/infras/stripe"
	boatModel "nautica/internal/domains/boat/model"
	boatRepo "nautica/internal/domains/boat/repository"
	bookingModel "nautica/internal/domains/booking/model"
	bookingRepo "nautica/internal/domains/booking/repository"
	ownerModel "nautica/internal/domains/owner/model"
	ownerRepo "nautica/internal/domains/owner/repository"
	"nautica/internal/domains/payment/model"
	"nautica/internal/domains/payment/model/dto"
	"nautica/internal/domains/payment/repository"
	"nautica/shared"
	"nautica/shared/constant"
	gDto "nautica/shared/dto"
	"nautica/shared/failure"
	gModel "nautica/shared/model"
	"nautica/shared/money"
	"nautica/shared/timezone"
)

// Escrow owns every payment state transition. Nothing else writes the
// payments table.
type Escrow interface {
	CreateCheckoutSession(ctx context.Context, bookingID string) (dto.CheckoutSessionResponse, error)
	CaptureHeld(ctx context.Context, bookingID string) error
	NewestByBooking(ctx context.Context, bookingID string) (model.Payment, error)
}

type serviceImpl struct {
	repo        repository.Payment
	bookingRepo bookingRepo.Booking
	boatRepo    boatRepo.Boat
	ownerRepo   ownerRepo.Owner
	processor   stripe.Client
	kafkaClient kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Payment,
	bookingRepo bookingRepo.Booking,
	boatRepo boatRepo.Boat,
	ownerRepo ownerRepo.Owner,
	processor stripe.Client,
	kafkaClient kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Escrow {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		boatRepo:    boatRepo,
		ownerRepo:   ownerRepo,
		processor:   processor,
		kafkaClient: kafkaClient,
		cfg:         cfg,
		otel:        otel,
	}
}

// SettlementAmount picks what goes on hold: the deposit when one is set,
// otherwise the full total.
func SettlementAmount(booking bookingModel.Booking) money.Money {
	if booking.DepositAmount.IsPositive() {
		return booking.DepositAmount
	}

	return booking.TotalPrice
}

// SplitFee divides the settlement between platform and owner. The two
// parts always recombine to the exact amount.
func SplitFee(amount money.Money, commissionPercent float64) (platformFee, ownerAmount money.Money) {
	platformFee = amount.Percent(commissionPercent)
	ownerAmount = amount.Sub(platformFee)

	return platformFee, ownerAmount
}

func (s *serviceImpl) CreateCheckoutSession(ctx context.Context, bookingID string) (res dto.CheckoutSessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCheckoutSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status != bookingModel.StatusPending && booking.Status != bookingModel.StatusConfirmed {
		return res, failure.InvalidState("booking can no longer be paid") // nolint:wrapcheck
	}

	outstanding, err := s.repo.Exist(ctx, s.outstandingFilter(bookingID))
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to check outstanding payments")

		return res, fmt.Errorf("failed to check outstanding payments: %w", err)
	}

	if outstanding {
		return res, failure.Conflict("an outstanding payment already exists for this booking") // nolint:wrapcheck
	}

	boat, err := s.boatRepo.Get(ctx, shared.FilterByID(booking.BoatID, boatModel.FieldID, boatModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("boatID", booking.BoatID).Msg("failed to get boat")

		return res, fmt.Errorf("failed to get boat: %w", err)
	}

	commission := s.cfg.Marketplace.DefaultCommissionRate

	owner, err := s.ownerRepo.Get(ctx, shared.FilterByID(boat.OwnerID, ownerModel.FieldID, ownerModel.TableName))
	if err != nil {
		log.Warn().Err(err).Str("ownerID", boat.OwnerID).Msg("failed to get owner, using default commission")
	} else if owner.ID != constant.Empty {
		commission = owner.Commission(s.cfg.Marketplace.DefaultCommissionRate)
	}

	amount := SettlementAmount(booking)
	platformFee, ownerAmount := SplitFee(amount, commission)

	session, err := s.processor.CreateCheckoutSession(ctx, stripe.CheckoutSessionParams{
		BookingID:   booking.ID,
		ProductName: boat.Name,
		Description: fmt.Sprintf("Reserva %s", booking.BookingDate.Format(constant.CalendarDateFormat)),
		Amount:      amount,
		Currency:    s.cfg.Marketplace.CurrencyCode,
		SuccessURL:  fmt.Sprintf("%s/bookings/%s?payment=success", s.cfg.App.BaseURL, booking.ID),
		CancelURL:   fmt.Sprintf("%s/bookings/%s?payment=cancelled", s.cfg.App.BaseURL, booking.ID),
	})
	if err != nil {
		return res, fmt.Errorf("failed to create checkout session: %w", err)
	}

	// The local row exists only once the processor has acknowledged the
	// session, so there is never a pending payment without a session ref.
	payment := model.Payment{
		ID:                uuid.NewString(),
		BookingID:         booking.ID,
		ProviderSessionID: session.ID,
		ProviderIntentID:  session.PaymentIntentID,
		Amount:            amount,
		PlatformFee:       platformFee,
		OwnerAmount:       ownerAmount,
		Status:            model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  booking.UserID,
			ModifiedBy: booking.UserID,
		},
	}

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to persist payment")

		return res, fmt.Errorf("failed to persist payment: %w", err)
	}

	return dto.CheckoutSessionResponse{
		PaymentID: payment.ID,
		BookingID: booking.ID,
		Amount:    amount,
		URL:       session.URL,
	}, nil
}

// CaptureHeld settles the newest payment of a booking at check-in time.
// The processor call comes first: local state only moves after the funds
// did. A concurrent release is treated as success.
func (s *serviceImpl) CaptureHeld(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CaptureHeld")
	defer scope.End()
	defer scope.TraceIfError(err)

	payment, err := s.NewestByBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if payment.ID == constant.Empty || payment.Status != model.StatusHeld || payment.ProviderIntentID == constant.Empty {
		return failure.PaymentNotReady("payment is not held yet") // nolint:wrapcheck
	}

	if err = s.processor.CapturePaymentIntent(ctx, payment.ProviderIntentID); err != nil {
		return fmt.Errorf("failed to capture payment: %w", err)
	}

	updated := map[string]any{
		model.FieldStatus:     model.StatusReleased,
		model.FieldReleasedAt: timezone.Now(),
	}

	rows, err := s.repo.Update(ctx, updated, s.statusGuardFilter(payment.ID, model.StatusHeld))
	if err != nil {
		log.Error().Err(err).Str("paymentID", payment.ID).Msg("failed to release payment")

		return fmt.Errorf("failed to release payment: %w", err)
	}

	if rows == 0 {
		log.Info().Str("paymentID", payment.ID).Msg("Payment was already released")

		return nil
	}

	s.publishEvent(ctx, constant.EventPaymentReleased, payment, model.StatusReleased)

	return nil
}

func (s *serviceImpl) NewestByBooking(ctx context.Context, bookingID string) (res model.Payment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NewestByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		Page:    1,
		Limit:   1,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	payments, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	if len(payments) == 0 {
		return res, nil
	}

	return payments[0], nil
}

func (s *serviceImpl) outstandingFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.OutstandingStatuses(),
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func (s *serviceImpl) statusGuardFilter(paymentID, expectedStatus string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    paymentID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    expectedStatus,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, payment model.Payment, status string) {
	if !s.cfg.Kafka.Enable {
		return
	}

	payload := dto.PaymentEvent{
		Event:      event,
		PaymentID:  payment.ID,
		BookingID:  payment.BookingID,
		Amount:     payment.Amount,
		Status:     status,
		OccurredAt: timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafkaClient.SendMessages(c, constant.KafkaTopicPaymentEvents, kafka.Message{Key: payment.BookingID, Value: payload}); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish payment event")
		}
	}()
}
