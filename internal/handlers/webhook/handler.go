package webhook

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nautica/infras/otel"
	"nautica/internal/domains/payment/webhook"
	"nautica/shared/constant"
	"nautica/shared/failure"
	"nautica/transport/http/response"
)

type Handler struct {
	webhook webhook.Handler
	otel    otel.Otel
}

func New(webhook webhook.Handler, otel otel.Otel) Handler {
	return Handler{
		webhook: webhook,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/webhooks/stripe", handler.Stripe)
}

// Stripe receives payment processor events. The signature covers the raw
// body, so the bytes are read before any decoding. Verification failures are
// 400s; processing failures are 500s so the processor redelivers.
func (handler *Handler) Stripe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Stripe")
	defer scope.End()

	rawBody, err := io.ReadAll(request.Body)
	if err != nil {
		err = failure.BadRequestFromString("failed to read webhook body")

		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	signatureHeader := request.Header.Get(constant.RequestHeaderStripeSignature)

	if err := handler.webhook.Verify(rawBody, signatureHeader); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected webhook delivery")

		response.WithError(writer, err)

		return
	}

	if err := handler.webhook.Apply(ctx, rawBody); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to apply webhook event")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "ok")
}
