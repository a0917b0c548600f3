package webhook_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nautica/config"
	"nautica/infras/otel/mocks"
	bookingMocks "nautica/internal/domains/booking/mocks"
	paymentMocks "nautica/internal/domains/payment/mocks"
	"nautica/internal/domains/payment/model"
	"nautica/internal/domains/payment/webhook"
	"nautica/shared/failure"
)

func newWebhookHandler(t *testing.T) (webhook.Handler, *paymentMocks.MockPayment, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	paymentRepo := paymentMocks.NewMockPayment(ctrl)
	bookingRepo := bookingMocks.NewMockBooking(ctrl)

	return webhook.New(paymentRepo, bookingRepo, nil, &config.Config{}, mocks.NewOtel()), paymentRepo, bookingRepo
}

func TestWebhookHandler_Apply_SessionCompleted(t *testing.T) {
	payload := []byte(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_1",
			"payment_intent": "pi_1",
			"client_reference_id": "booking-1"
		}}
	}`)

	pending := model.Payment{ID: "payment-1", BookingID: "booking-1", Status: model.StatusPending}

	t.Run("moves payment to held and confirms the booking", func(t *testing.T) {
		handler, paymentRepo, bookingRepo := newWebhookHandler(t)

		gomock.InOrder(
			paymentRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(pending, nil),
			paymentRepo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, updated map[string]any, _ any) (int64, error) {
					assert.Equal(t, model.StatusHeld, updated[model.FieldStatus])
					assert.Equal(t, "pi_1", updated[model.FieldProviderIntentID])

					return 1, nil
				}),
			bookingRepo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(int64(1), nil),
		)

		assert.NoError(t, handler.Apply(context.Background(), payload))
	})

	t.Run("redelivery stops at the payment guard", func(t *testing.T) {
		handler, paymentRepo, _ := newWebhookHandler(t)

		paymentRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Payment{ID: "payment-1", Status: model.StatusHeld}, nil)

		paymentRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		// The booking repository is never touched on a replay.
		assert.NoError(t, handler.Apply(context.Background(), payload))
	})

	t.Run("booking id from metadata when the reference is absent", func(t *testing.T) {
		handler, paymentRepo, bookingRepo := newWebhookHandler(t)

		metadataPayload := []byte(`{
			"type": "checkout.session.completed",
			"data": {"object": {
				"id": "cs_1",
				"metadata": {"booking_id": "booking-1"}
			}}
		}`)

		paymentRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pending, nil)

		paymentRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated map[string]any, _ any) (int64, error) {
				// No intent on the session, so none is written.
				_, ok := updated[model.FieldProviderIntentID]
				assert.False(t, ok)

				return 1, nil
			})

		bookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		assert.NoError(t, handler.Apply(context.Background(), metadataPayload))
	})

	t.Run("session without any booking reference is acknowledged", func(t *testing.T) {
		handler, _, _ := newWebhookHandler(t)

		orphan := []byte(`{
			"type": "checkout.session.completed",
			"data": {"object": {"id": "cs_1"}}
		}`)

		assert.NoError(t, handler.Apply(context.Background(), orphan))
	})

	t.Run("unknown session is acknowledged", func(t *testing.T) {
		handler, paymentRepo, _ := newWebhookHandler(t)

		paymentRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Payment{}, nil)

		assert.NoError(t, handler.Apply(context.Background(), payload))
	})
}

func TestWebhookHandler_Apply_SessionExpired(t *testing.T) {
	payload := []byte(`{
		"type": "checkout.session.expired",
		"data": {"object": {"id": "cs_1"}}
	}`)

	handler, paymentRepo, _ := newWebhookHandler(t)

	paymentRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Payment{ID: "payment-1", Status: model.StatusPending}, nil)

	paymentRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated map[string]any, _ any) (int64, error) {
			assert.Equal(t, model.StatusFailed, updated[model.FieldStatus])

			return 1, nil
		})

	assert.NoError(t, handler.Apply(context.Background(), payload))
}

func TestWebhookHandler_Apply_IntentFailed(t *testing.T) {
	payload := []byte(`{
		"type": "payment_intent.payment_failed",
		"data": {"object": {"id": "pi_1"}}
	}`)

	t.Run("fails the outstanding payment", func(t *testing.T) {
		handler, paymentRepo, _ := newWebhookHandler(t)

		paymentRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Payment{ID: "payment-1", Status: model.StatusHeld}, nil)

		paymentRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		assert.NoError(t, handler.Apply(context.Background(), payload))
	})

	t.Run("settled payment is left alone", func(t *testing.T) {
		handler, paymentRepo, _ := newWebhookHandler(t)

		paymentRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Payment{ID: "payment-1", Status: model.StatusReleased}, nil)

		paymentRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		assert.NoError(t, handler.Apply(context.Background(), payload))
	})
}

func TestWebhookHandler_Apply_Envelope(t *testing.T) {
	t.Run("unknown event is acknowledged", func(t *testing.T) {
		handler, _, _ := newWebhookHandler(t)

		assert.NoError(t, handler.Apply(context.Background(), []byte(`{"type":"invoice.paid","data":{"object":{}}}`)))
	})

	t.Run("malformed payload is a client error", func(t *testing.T) {
		handler, _, _ := newWebhookHandler(t)

		err := handler.Apply(context.Background(), []byte(`not json`))

		assert.EqualError(t, err, "malformed webhook payload")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
