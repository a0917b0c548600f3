package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nautica/infras/otel"
	"nautica/internal/domains/booking/model/dto"
	"nautica/internal/domains/booking/service"
	paymentDto "nautica/internal/domains/payment/model/dto"
	paymentService "nautica/internal/domains/payment/service"
	"nautica/shared/constant"
	gDto "nautica/shared/dto"
	"nautica/shared/validator"
	"nautica/transport/http/response"
)

type Handler struct {
	service service.Booking
	escrow  paymentService.Escrow
	otel    otel.Otel
}

func New(service service.Booking, escrow paymentService.Escrow, otel otel.Otel) Handler {
	return Handler{
		service: service,
		escrow:  escrow,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/mybookings", handler.GetMyBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/checkout", handler.CreateCheckoutSession)
		routerGroup.Get("/{id}/payment", handler.GetPayment)
		routerGroup.Post("/{id}/checkin", handler.CheckIn)
		routerGroup.Post("/{id}/complete", handler.Complete)
		routerGroup.Post("/{id}/cancel", handler.Cancel)
	})
}

// CreateBooking reserves a boat for a calendar day. Replaying the same
// request returns the existing booking with duplicate set, not an error.
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	code := http.StatusCreated
	if result.Duplicate {
		code = http.StatusOK
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created by user " + user)

	response.WithJSON(writer, code, result)
}

// GetMyBookings lists the authenticated renter's bookings.
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.GetMine(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateCheckoutSession opens a hosted payment page for the booking. The
// returned URL is where the renter authorizes the escrow hold.
func (handler *Handler) CreateCheckoutSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCheckoutSession")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.escrow.CreateCheckoutSession(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create checkout session")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetPayment returns the newest payment attached to the booking.
func (handler *Handler) GetPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayment")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	payment, err := handler.escrow.NewestByBooking(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment")

		response.WithError(writer, err)

		return
	}

	res := paymentDto.PaymentResponse{}
	res.FromModel(payment)

	response.WithJSON(writer, http.StatusOK, res)
}

// CheckIn marks the rental as started. The escrow capture happens first, so
// a booking whose payment is not held yet is rejected as not ready.
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	result, err := handler.service.CheckIn(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, result)
}

func (handler *Handler) Complete(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Complete")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Complete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking completed successfully")
}

func (handler *Handler) Cancel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.CancelBookingRequest{}

	// The cancel reason is optional, an empty body is fine.
	if request.ContentLength != 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}
	}

	if err := handler.service.Cancel(ctx, id, req.Reason); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}
