package stripe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"nautica/config"
	"nautica/infras/otel/mocks"
	"nautica/infras/stripe"
	"nautica/shared/money"
)

func newStripeClient(apiBase string) stripe.Client {
	cfg := &config.Config{}
	cfg.External.Stripe.SecretKey = "sk_test_123"
	cfg.External.Stripe.APIBase = apiBase
	cfg.External.Stripe.TimeoutSeconds = 2

	return stripe.New(cfg, mocks.NewOtel())
}

func TestClient_CreateCheckoutSession(t *testing.T) {
	t.Run("returns the session on success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/checkout/sessions", request.URL.Path)
			assert.NoError(t, request.ParseForm())
			assert.Equal(t, "manual", request.PostForm.Get("payment_intent_data[capture_method]"))
			assert.Equal(t, "30000", request.PostForm.Get("line_items[0][price_data][unit_amount]"))

			_, _ = writer.Write([]byte(`{"id":"cs_1","url":"https://pay.example/cs_1","payment_intent":"pi_1"}`))
		}))
		defer server.Close()

		client := newStripeClient(server.URL)

		session, err := client.CreateCheckoutSession(context.Background(), stripe.CheckoutSessionParams{
			BookingID:   "booking-1",
			ProductName: "Veleiro Brisa",
			Amount:      money.FromCents(30000),
			Currency:    "brl",
			SuccessURL:  "https://app.example/ok",
			CancelURL:   "https://app.example/cancel",
		})

		assert.NoError(t, err)
		assert.Equal(t, "cs_1", session.ID)
		assert.Equal(t, "pi_1", session.PaymentIntentID)
	})

	t.Run("processor error message never reaches the caller", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusPaymentRequired)
			_, _ = writer.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined; internal-detail-XYZ"}}`))
		}))
		defer server.Close()

		client := newStripeClient(server.URL)

		_, err := client.CreateCheckoutSession(context.Background(), stripe.CheckoutSessionParams{
			BookingID: "booking-1",
			Amount:    money.FromCents(30000),
			Currency:  "brl",
		})

		assert.Error(t, err)
		assert.NotContains(t, err.Error(), "declined")
		assert.NotContains(t, err.Error(), "internal-detail-XYZ")
		assert.EqualError(t, err, "payment processor rejected the request")
	})

	t.Run("undecodable error body still yields a generic failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("upstream exploded"))
		}))
		defer server.Close()

		client := newStripeClient(server.URL)

		_, err := client.CreateCheckoutSession(context.Background(), stripe.CheckoutSessionParams{
			BookingID: "booking-1",
			Amount:    money.FromCents(30000),
			Currency:  "brl",
		})

		assert.Error(t, err)
		assert.NotContains(t, err.Error(), "upstream exploded")
	})

	t.Run("missing secret key fails before any request", func(t *testing.T) {
		client := stripe.New(&config.Config{}, mocks.NewOtel())

		_, err := client.CreateCheckoutSession(context.Background(), stripe.CheckoutSessionParams{})

		assert.Error(t, err)
	})
}

func TestClient_CapturePaymentIntent(t *testing.T) {
	t.Run("captures the intent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/payment_intents/pi_1/capture", request.URL.Path)

			_, _ = writer.Write([]byte(`{"id":"pi_1","status":"succeeded"}`))
		}))
		defer server.Close()

		client := newStripeClient(server.URL)

		assert.NoError(t, client.CapturePaymentIntent(context.Background(), "pi_1"))
	})

	t.Run("already captured intent is treated as settled", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"error":{"type":"invalid_request_error","code":"payment_intent_unexpected_state","message":"This PaymentIntent could not be captured because it has already been captured."}}`))
		}))
		defer server.Close()

		client := newStripeClient(server.URL)

		assert.NoError(t, client.CapturePaymentIntent(context.Background(), "pi_1"))
	})

	t.Run("other processor errors surface sanitized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such payment_intent: pi_secret_ref"}}`))
		}))
		defer server.Close()

		client := newStripeClient(server.URL)

		err := client.CapturePaymentIntent(context.Background(), "pi_1")

		assert.Error(t, err)
		assert.NotContains(t, err.Error(), "pi_secret_ref")
		assert.EqualError(t, err, "payment processor rejected the request")
	})
}
