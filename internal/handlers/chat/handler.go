package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nautica/infras/otel"
	"nautica/internal/domains/chat/model/dto"
	"nautica/internal/domains/chat/service"
	"nautica/shared/constant"
	"nautica/shared/validator"
	"nautica/transport/http/response"
)

type Handler struct {
	service service.Chat
	otel    otel.Otel
}

func New(service service.Chat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/chat", handler.Chat)
}

// Chat runs one turn of the concierge conversation. Anonymous visitors can
// browse boats and quotes; confirming a booking requires a token, which the
// service answers with a login prompt rather than a 401.
func (handler *Handler) Chat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Chat")
	defer scope.End()

	req := dto.ChatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate chat request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Respond(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to respond to chat")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
