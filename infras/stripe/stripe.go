package stripe

//go:generate go run go.uber.org/mock/mockgen -source=./stripe.go -destination=./mocks/stripe_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"nautica/config"
	"nautica/infras/otel"
	"nautica/shared/constant"
	"nautica/shared/failure"
	"nautica/shared/money"
)

const (
	otelAttrSessionID = "session_id"
	otelAttrIntentID  = "payment_intent_id"
	otelAttrBookingID = "booking_id"
)

// CheckoutSessionParams carries everything needed to open a hosted checkout
// page for one booking. Amounts are integer cents.
type CheckoutSessionParams struct {
	BookingID     string
	ProductName   string
	Description   string
	Amount        money.Money
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession is the subset of the checkout session resource this
// service cares about.
type CheckoutSession struct {
	ID              string `json:"id"`
	URL             string `json:"url"`
	PaymentIntentID string `json:"payment_intent"`
}

// Client wraps the payment processor REST API. Sessions are created with
// manual capture so funds stay on hold until check-in.
type Client interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (CheckoutSession, error)
	CapturePaymentIntent(ctx context.Context, paymentIntentID string) error
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// The processor reports a capture on an intent that already settled (or
// otherwise left requires_capture) under this structured code.
const errCodeIntentUnexpectedState = "payment_intent_unexpected_state"

// apiCallError keeps the processor's structured error code for callers that
// branch on it. The raw message is logged, never surfaced.
type apiCallError struct {
	code string
	err  error
}

func (e *apiCallError) Error() string { return e.err.Error() }

func (e *apiCallError) Unwrap() error { return e.err }

func hasErrorCode(err error, code string) bool {
	var callErr *apiCallError

	return errors.As(err, &callErr) && callErr.code == code
}

type clientImpl struct {
	config     *config.Config
	httpClient *http.Client
	otel       otel.Otel
}

func New(config *config.Config, otl otel.Otel) Client {
	return &clientImpl{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.External.Stripe.TimeoutSeconds) * time.Second,
		},
		otel: otl,
	}
}

func (c *clientImpl) CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (session CheckoutSession, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelStripeScopeName, constant.OtelStripeScopeName+".CreateCheckoutSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrBookingID, params.BookingID)

	if c.config.External.Stripe.SecretKey == "" {
		err = failure.ConfigError("payment processor secret key is not configured")

		return CheckoutSession{}, err
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("client_reference_id", params.BookingID)
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("payment_intent_data[capture_method]", "manual")
	form.Set("payment_intent_data[metadata][booking_id]", params.BookingID)
	form.Set("metadata[booking_id]", params.BookingID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", params.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.Amount.Cents(), 10))
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)

	if params.Description != "" {
		form.Set("line_items[0][price_data][product_data][description]", params.Description)
	}

	if params.CustomerEmail != "" {
		form.Set("customer_email", params.CustomerEmail)
	}

	body, err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", form)
	if err != nil {
		return CheckoutSession{}, err
	}

	if err = json.Unmarshal(body, &session); err != nil {
		err = failure.UpstreamError("failed to decode checkout session response")

		return CheckoutSession{}, err
	}

	scope.SetAttribute(otelAttrSessionID, session.ID)

	return session, nil
}

func (c *clientImpl) CapturePaymentIntent(ctx context.Context, paymentIntentID string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelStripeScopeName, constant.OtelStripeScopeName+".CapturePaymentIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrIntentID, paymentIntentID)

	if c.config.External.Stripe.SecretKey == "" {
		err = failure.ConfigError("payment processor secret key is not configured")

		return err
	}

	endpoint := fmt.Sprintf("/v1/payment_intents/%s/capture", url.PathEscape(paymentIntentID))

	_, err = c.do(ctx, http.MethodPost, endpoint, url.Values{})
	if err != nil {
		// A retried capture races with an earlier success. The funds are
		// settled either way, so report it as such.
		if hasErrorCode(err, errCodeIntentUnexpectedState) {
			log.Info().Str("paymentIntentID", paymentIntentID).Msg("Payment intent was already captured")

			err = nil

			return nil
		}

		return err
	}

	return nil
}

func (c *clientImpl) do(ctx context.Context, method, endpoint string, form url.Values) ([]byte, error) {
	target := strings.TrimRight(c.config.External.Stripe.APIBase, "/") + endpoint

	req, err := http.NewRequestWithContext(ctx, method, target, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, failure.UpstreamError("failed to build payment processor request")
	}

	req.Header.Set(constant.RequestHeaderContentType, "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.config.External.Stripe.SecretKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("Payment processor request failed")

		return nil, failure.UpstreamError("payment processor is unreachable")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failure.UpstreamError("failed to read payment processor response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			// The raw message can carry account and card details, so it
			// stays in the log and a generic failure goes to the caller.
			log.Error().
				Int("status", resp.StatusCode).
				Str("endpoint", endpoint).
				Str("code", apiErr.Error.Code).
				Str("message", apiErr.Error.Message).
				Msg("Payment processor returned an error")

			return nil, &apiCallError{
				code: apiErr.Error.Code,
				err:  failure.UpstreamError("payment processor rejected the request"),
			}
		}

		log.Error().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("Payment processor returned an error")

		return nil, failure.UpstreamError(fmt.Sprintf("payment processor returned status %d", resp.StatusCode))
	}

	return body, nil
}
