package boat

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	availabilityService "nautica/internal/domains/availability/service"
	"nautica/infras/otel"
	"nautica/internal/domains/boat/model"
	"nautica/internal/domains/boat/service"
	"nautica/shared"
	"nautica/shared/constant"
	gDto "nautica/shared/dto"
	"nautica/shared/failure"
	"nautica/shared/timezone"
	"nautica/transport/http/response"
)

type Handler struct {
	service      service.Boat
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service service.Boat, availability availabilityService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/boats", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBoats)
		routerGroup.Get("/{id}", handler.GetBoatByID)
		routerGroup.Get("/{id}/availability", handler.GetAvailability)
	})
}

// GetBoats lists boats with optional category and owner filters. Only active
// listings are returned unless active=false is asked for explicitly.
func (handler *Handler) GetBoats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoats")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	category := request.URL.Query().Get(model.FieldCategory)
	ownerID := request.URL.Query().Get(model.FieldOwnerID)
	active := request.URL.Query().Get(model.FieldActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
		})
	}

	if ownerID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOwnerID,
			Operator: gDto.FilterOperatorEq,
			Value:    ownerID,
		})
	}

	activeValue := shared.ConvertStringToBool(active)
	if activeValue == nil {
		defaultActive := true
		activeValue = &defaultActive
	}

	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldActive,
		Operator: gDto.FilterOperatorEq,
		Value:    *activeValue,
	})

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get boats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBoatByID retrieves a single boat with its presigned photo URLs.
func (handler *Handler) GetBoatByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoatByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get boat")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetAvailability returns the booking window for a boat. `from` defaults to
// today and `days` to the configured horizon.
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	from := timezone.Today()

	if fromParam := request.URL.Query().Get("from"); fromParam != constant.Empty {
		parsed, err := timezone.ParseCalendarDate(fromParam)
		if err != nil {
			err = failure.BadRequestFromString("invalid from parameter, expected YYYY-MM-DD")

			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		from = parsed
	}

	days := 0

	if daysParam := request.URL.Query().Get("days"); daysParam != constant.Empty {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil || parsed < 0 {
			err = failure.BadRequestFromString("invalid days parameter")

			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		days = parsed
	}

	res, err := handler.availability.Window(ctx, id, from, days)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability window")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
