package webhook

//go:generate go run go.uber.org/mock/mockgen -source=./webhook.go -destination=./mocks/webhook_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"nautica/config"
	"nautica/infras/kafka"
	"nautica/infras/otel"
	bookingModel "nautica/internal/domains/booking/model"
	bookingRepo "nautica/internal/domains/booking/repository"
	"nautica/internal/domains/payment/model"
	"nautica/internal/domains/payment/model/dto"
	"nautica/internal/domains/payment/repository"
	"nautica/shared/constant"
	gDto "nautica/shared/dto"
	"nautica/shared/failure"
	"nautica/shared/timezone"
)

const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
	EventCheckoutSessionExpired   = "checkout.session.expired"
	EventPaymentIntentFailed      = "payment_intent.payment_failed"
)

// Event is the processor envelope. Data.Object is decoded per event type.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type checkoutSessionObject struct {
	ID                string `json:"id"`
	PaymentIntent     string `json:"payment_intent"`
	ClientReferenceID string `json:"client_reference_id"`
	Metadata          struct {
		BookingID string `json:"booking_id"`
	} `json:"metadata"`
}

type paymentIntentObject struct {
	ID string `json:"id"`
}

// Handler verifies and applies processor webhook deliveries. Every state
// change is conditioned on the expected prior state, so at-least-once
// redelivery degenerates to a no-op.
type Handler interface {
	Verify(rawBody []byte, signatureHeader string) error
	Apply(ctx context.Context, rawBody []byte) error
}

type handlerImpl struct {
	paymentRepo repository.Payment
	bookingRepo bookingRepo.Booking
	kafkaClient kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func New(paymentRepo repository.Payment, bookingRepo bookingRepo.Booking, kafkaClient kafka.Client, cfg *config.Config, otel otel.Otel) Handler {
	return &handlerImpl{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		kafkaClient: kafkaClient,
		cfg:         cfg,
		otel:        otel,
	}
}

func (h *handlerImpl) Verify(rawBody []byte, signatureHeader string) error {
	tolerance := time.Duration(h.cfg.External.Stripe.ToleranceSeconds) * time.Second

	return VerifySignature(rawBody, signatureHeader, h.cfg.External.Stripe.WebhookSecret, tolerance, timezone.Now())
}

func (h *handlerImpl) Apply(ctx context.Context, rawBody []byte) (err error) {
	ctx, scope := h.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Apply")
	defer scope.End()
	defer scope.TraceIfError(err)

	var event Event
	if err = json.Unmarshal(rawBody, &event); err != nil {
		return failure.BadRequestFromString("malformed webhook payload") // nolint:wrapcheck
	}

	scope.SetAttribute("event.type", event.Type)

	switch event.Type {
	case EventCheckoutSessionCompleted:
		return h.applySessionCompleted(ctx, event)
	case EventCheckoutSessionExpired:
		return h.applySessionExpired(ctx, event)
	case EventPaymentIntentFailed:
		return h.applyIntentFailed(ctx, event)
	default:
		// Unknown events are acknowledged so the processor stops retrying.
		log.Info().Str("type", event.Type).Msg("Ignoring unhandled webhook event")

		return nil
	}
}

func (h *handlerImpl) applySessionCompleted(ctx context.Context, event Event) error {
	var session checkoutSessionObject
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		return failure.BadRequestFromString("malformed checkout session object") // nolint:wrapcheck
	}

	bookingID := session.ClientReferenceID
	if bookingID == constant.Empty {
		bookingID = session.Metadata.BookingID
	}

	if bookingID == constant.Empty {
		log.Warn().Str("sessionID", session.ID).Msg("Checkout session completed without a booking reference, acknowledging")

		return nil
	}

	payment, err := h.paymentBySession(ctx, session.ID)
	if err != nil {
		return err
	}

	if payment.ID == constant.Empty {
		log.Warn().Str("sessionID", session.ID).Msg("No payment recorded for completed session, acknowledging")

		return nil
	}

	updated := map[string]any{
		model.FieldStatus: model.StatusHeld,
		model.FieldHeldAt: timezone.Now(),
	}
	if session.PaymentIntent != constant.Empty {
		updated[model.FieldProviderIntentID] = session.PaymentIntent
	}

	rows, err := h.paymentRepo.Update(ctx, updated, h.paymentGuard(payment.ID, model.StatusPending))
	if err != nil {
		log.Error().Err(err).Str("paymentID", payment.ID).Msg("failed to mark payment held")

		return fmt.Errorf("failed to mark payment held: %w", err)
	}

	if rows == 0 {
		log.Info().Str("paymentID", payment.ID).Msg("Payment already past pending, redelivery ignored")

		return nil
	}

	h.publishPaymentEvent(ctx, constant.EventPaymentHeld, payment, model.StatusHeld)

	bookingUpdated := map[string]any{
		bookingModel.FieldStatus: bookingModel.StatusConfirmed,
	}

	if _, err = h.bookingRepo.Update(ctx, bookingUpdated, h.bookingGuard(bookingID, bookingModel.StatusPending)); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to confirm booking")

		return fmt.Errorf("failed to confirm booking: %w", err)
	}

	return nil
}

func (h *handlerImpl) applySessionExpired(ctx context.Context, event Event) error {
	var session checkoutSessionObject
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		return failure.BadRequestFromString("malformed checkout session object") // nolint:wrapcheck
	}

	payment, err := h.paymentBySession(ctx, session.ID)
	if err != nil {
		return err
	}

	if payment.ID == constant.Empty {
		return nil
	}

	if err = h.failPayment(ctx, payment); err != nil {
		return err
	}

	// The booking stays pending: the renter can still open a new session.
	return nil
}

func (h *handlerImpl) applyIntentFailed(ctx context.Context, event Event) error {
	var intent paymentIntentObject
	if err := json.Unmarshal(event.Data.Object, &intent); err != nil {
		return failure.BadRequestFromString("malformed payment intent object") // nolint:wrapcheck
	}

	if intent.ID == constant.Empty {
		return nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProviderIntentID,
				Value:    intent.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	payment, err := h.paymentRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("intentID", intent.ID).Msg("failed to get payment by intent")

		return fmt.Errorf("failed to get payment by intent: %w", err)
	}

	if payment.ID == constant.Empty {
		return nil
	}

	return h.failPayment(ctx, payment)
}

func (h *handlerImpl) failPayment(ctx context.Context, payment model.Payment) error {
	updated := map[string]any{
		model.FieldStatus: model.StatusFailed,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    payment.ID,
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

	rows, err := h.paymentRepo.Update(ctx, updated, filter)
	if err != nil {
		log.Error().Err(err).Str("paymentID", payment.ID).Msg("failed to mark payment failed")

		return fmt.Errorf("failed to mark payment failed: %w", err)
	}

	if rows > 0 {
		h.publishPaymentEvent(ctx, constant.EventPaymentFailed, payment, model.StatusFailed)
	}

	return nil
}

func (h *handlerImpl) paymentBySession(ctx context.Context, sessionID string) (model.Payment, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProviderSessionID,
				Value:    sessionID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	payment, err := h.paymentRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to get payment by session")

		return payment, fmt.Errorf("failed to get payment by session: %w", err)
	}

	return payment, nil
}

func (h *handlerImpl) paymentGuard(paymentID, expectedStatus string) gDto.FilterGroup {
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

func (h *handlerImpl) bookingGuard(bookingID, expectedStatus string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Value:    expectedStatus,
				Operator: gDto.FilterOperatorEq,
				Table:    bookingModel.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func (h *handlerImpl) publishPaymentEvent(ctx context.Context, event string, payment model.Payment, status string) {
	if !h.cfg.Kafka.Enable {
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

		if err := h.kafkaClient.SendMessages(c, constant.KafkaTopicPaymentEvents, kafka.Message{Key: payment.BookingID, Value: payload}); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish payment event")
		}
	}()
}
