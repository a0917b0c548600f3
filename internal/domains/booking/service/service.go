package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"nautica/config"
	"nautica/infras/kafka"
	"nautica/infras/otel"
	boatModel "nautica/internal/domains/boat/model"
	boatRepo "nautica/internal/domains/boat/repository"
	"nautica/internal/domains/booking/model"
	"nautica/internal/domains/booking/model/dto"
	"nautica/internal/domains/booking/repository"
	paymentService "nautica/internal/domains/payment/service"
	pricingService "nautica/internal/domains/pricing/service"
	"nautica/shared"
	"nautica/shared/constant"
	gDto "nautica/shared/dto"
	"nautica/shared/failure"
	"nautica/shared/timezone"
)

// Booking drives the reservation lifecycle:
// pending → confirmed → in_progress → completed, with cancellation from the
// first two states. Confirmation itself is webhook-driven.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResult, error)
	CheckIn(ctx context.Context, bookingID string) (dto.CheckInResult, error)
	Complete(ctx context.Context, bookingID string) error
	Cancel(ctx context.Context, bookingID, reason string) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	boatRepo     boatRepo.Boat
	pricing      pricingService.Pricing
	escrow       paymentService.Escrow
	kafkaClient  kafka.Client
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	boatRepo boatRepo.Boat,
	pricing pricingService.Pricing,
	escrow paymentService.Escrow,
	kafkaClient kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		boatRepo:     boatRepo,
		pricing:      pricing,
		escrow:       escrow,
		kafkaClient:  kafkaClient,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	subject, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if subject == constant.Empty {
		return res, failure.Unauthorized("authentication required to create a booking") // nolint:wrapcheck
	}

	bookingDate, err := timezone.ParseCalendarDate(req.BookingDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid booking date") // nolint:wrapcheck
	}

	if bookingDate.Before(timezone.Today()) {
		return res, failure.InvalidState("booking date must be today or later") // nolint:wrapcheck
	}

	boat, err := s.boatRepo.Get(ctx, shared.FilterByID(req.BoatID, boatModel.FieldID, boatModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("boatID", req.BoatID).Msg("failed to get boat")

		return res, fmt.Errorf("failed to get boat: %w", err)
	}

	if boat.ID == constant.Empty || !boat.Active {
		return res, failure.NotFound("boat is not available") // nolint:wrapcheck
	}

	// Idempotent replay: a second confirm intent for the same boat-day
	// returns the reservation already holding it.
	existing, err := s.findActive(ctx, subject, boat.ID, req.BookingDate)
	if err != nil {
		return res, err
	}

	if existing.ID != constant.Empty {
		res.Duplicate = true
		res.Booking.FromModel(existing)

		return res, nil
	}

	quote, err := s.pricing.QuoteBoatDay(ctx, boat.ID, boat.BasePriceDaily, bookingDate, subject)
	if err != nil {
		return res, fmt.Errorf("failed to price booking: %w", err)
	}

	booking, err := req.ToModel(subject, quote.PriceBeforeDiscount, quote.DiscountAmount, quote.Total, boat.DepositAmount)
	if err != nil {
		return res, failure.BadRequestFromString("invalid booking date") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishEvent(ctx, constant.EventBookingCreated, booking)

	res.Booking.FromModel(booking)

	return res, nil
}

// CheckIn settles the escrow hold and opens the rental. Retries and
// concurrent calls collapse to an "already checked in" acknowledgment, and
// the processor capture happens before any local state moves.
func (s *serviceImpl) CheckIn(ctx context.Context, bookingID string) (res dto.CheckInResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.ownedBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.Status == model.StatusInProgress || booking.CheckInAt != nil {
		res.Already = true

		return res, nil
	}

	if booking.Status != model.StatusConfirmed {
		return res, failure.InvalidState("booking is not confirmed") // nolint:wrapcheck
	}

	if err = s.escrow.CaptureHeld(ctx, booking.ID); err != nil {
		return res, err
	}

	updated := map[string]any{
		model.FieldStatus:    model.StatusInProgress,
		model.FieldCheckInAt: timezone.Now(),
	}

	rows, err := s.repo.Update(ctx, updated, s.statusGuard(booking.ID, model.StatusConfirmed))
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to check in booking")

		return res, fmt.Errorf("failed to check in booking: %w", err)
	}

	if rows == 0 {
		res.Already = true

		return res, nil
	}

	booking.Status = model.StatusInProgress
	s.publishEvent(ctx, constant.EventBookingCheckedIn, booking)

	return res, nil
}

func (s *serviceImpl) Complete(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.ownedBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	updated := map[string]any{
		model.FieldStatus:     model.StatusCompleted,
		model.FieldCheckOutAt: timezone.Now(),
	}

	rows, err := s.repo.Update(ctx, updated, s.statusGuard(booking.ID, model.StatusInProgress))
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to complete booking")

		return fmt.Errorf("failed to complete booking: %w", err)
	}

	if rows == 0 {
		return failure.InvalidState("booking is not in progress") // nolint:wrapcheck
	}

	booking.Status = model.StatusCompleted
	s.publishEvent(ctx, constant.EventBookingCompleted, booking)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, bookingID, reason string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.ownedBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	updated := map[string]any{
		model.FieldStatus:       model.StatusCancelled,
		model.FieldCancelledAt:  timezone.Now(),
		model.FieldCancelReason: reason,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    booking.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    []string{model.StatusPending, model.StatusConfirmed},
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	rows, err := s.repo.Update(ctx, updated, filter)
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	if rows == 0 {
		return failure.InvalidState("booking can no longer be cancelled") // nolint:wrapcheck
	}

	booking.Status = model.StatusCancelled
	s.publishEvent(ctx, constant.EventBookingCancelled, booking)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.ownedBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	subject, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if subject == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    subject,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// ownedBooking loads a booking and verifies it belongs to the caller.
// Foreign bookings look like missing ones so ids cannot be probed.
func (s *serviceImpl) ownedBooking(ctx context.Context, bookingID string) (model.Booking, error) {
	subject, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if subject == constant.Empty {
		return model.Booking{}, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get booking")

		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return model.Booking{}, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if booking.UserID != subject && role != constant.RoleAdmin {
		return model.Booking{}, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) findActive(ctx context.Context, subject, boatID, date string) (model.Booking, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    subject,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBoatID,
				Value:    boatID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.ActiveStatuses(),
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check active booking")

		return model.Booking{}, fmt.Errorf("failed to check active booking: %w", err)
	}

	return booking, nil
}

func (s *serviceImpl) statusGuard(bookingID, expectedStatus string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    bookingID,
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

func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	payload := dto.BookingEvent{
		Event:      event,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		BoatID:     booking.BoatID,
		Date:       booking.BookingDate.Format(constant.CalendarDateFormat),
		Status:     booking.Status,
		OccurredAt: timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafkaClient.SendMessages(c, constant.KafkaTopicBookingEvents, kafka.Message{Key: booking.ID, Value: payload}); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}
