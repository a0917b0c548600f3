package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"nautica/config"
	"nautica/infras/ai"
	"nautica/infras/otel"
	availabilityService "nautica/internal/domains/availability/service"
	boatService "nautica/internal/domains/boat/service"
	bookingDto "nautica/internal/domains/booking/model/dto"
	bookingService "nautica/internal/domains/booking/service"
	"nautica/internal/domains/chat/model/dto"
	"nautica/internal/domains/intent"
	paymentService "nautica/internal/domains/payment/service"
	pricingService "nautica/internal/domains/pricing/service"
	"nautica/shared/constant"
	"nautica/shared/failure"
	"nautica/shared/timezone"
)

const systemPrompt = `Você é o assistente virtual de um marketplace de embarcações náuticas no Brasil.
Ajude o usuário a encontrar embarcações, consultar disponibilidade, entender preços e concluir reservas.
Seja amigável, profissional e conhecedor do mundo náutico. Sempre responda em português brasileiro.`

const carouselLimit = 5

// Canned copy used when the text-completion collaborator is unavailable.
// The structured outcome never depends on it.
const (
	fallbackGreeting    = "Olá! Posso ajudar você a encontrar a embarcação perfeita. Me diga que tipo de barco procura, para quantas pessoas e em qual data."
	fallbackBoats       = "Encontrei estas embarcações para você. Toque em uma delas para ver detalhes e disponibilidade."
	fallbackNoBoats     = "Não encontrei embarcações desse tipo no momento. Quer tentar outra categoria?"
	fallbackCalendar    = "Aqui está a disponibilidade da embarcação. Escolha uma data para continuar."
	fallbackSummary     = "Aqui está o resumo da sua reserva. Confirme para gerar o link de pagamento."
	fallbackPayment     = "Sua reserva está garantida! Use o link abaixo para concluir o pagamento."
	fallbackLogin       = "Para confirmar a reserva você precisa entrar na sua conta."
	fallbackBookingFail = "Não consegui concluir a reserva agora. Tente novamente em instantes."
)

// Chat turns a free-text conversation into structured marketplace
// outcomes. Intent extraction decides the branch; the AI collaborator only
// decorates the reply with prose.
type Chat interface {
	Respond(ctx context.Context, req dto.ChatRequest) (dto.ChatResponse, error)
}

type serviceImpl struct {
	extractor    intent.Extractor
	boats        boatService.Boat
	availability availabilityService.Availability
	bookings     bookingService.Booking
	pricing      pricingService.Pricing
	escrow       paymentService.Escrow
	assistant    ai.Client
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	extractor intent.Extractor,
	boats boatService.Boat,
	availability availabilityService.Availability,
	bookings bookingService.Booking,
	pricing pricingService.Pricing,
	escrow paymentService.Escrow,
	assistant ai.Client,
	cfg *config.Config,
	otel otel.Otel,
) Chat {
	return &serviceImpl{
		extractor:    extractor,
		boats:        boats,
		availability: availability,
		bookings:     bookings,
		pricing:      pricing,
		escrow:       escrow,
		assistant:    assistant,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Respond(ctx context.Context, req dto.ChatRequest) (res dto.ChatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Respond")
	defer scope.End()
	defer scope.TraceIfError(err)

	text := req.LatestUserText()
	in := s.extractor.Extract(text)

	subject, _ := ctx.Value(constant.ContextKeyUserID).(string)

	switch {
	case in.Confirm && in.EntityID != constant.Empty && in.Date != constant.Empty:
		return s.respondConfirm(ctx, req, in, subject)
	case in.Payment && in.EntityID != constant.Empty:
		return s.respondPayment(ctx, req, in.EntityID)
	case in.EntityID != constant.Empty && in.Date != constant.Empty:
		return s.respondSummary(ctx, req, in, subject)
	case in.EntityID != constant.Empty:
		return s.respondCalendar(ctx, req, in.EntityID)
	case in.Category != constant.Empty:
		return s.respondBoats(ctx, req, in.Category)
	default:
		return s.plainReply(ctx, req, fallbackGreeting), nil
	}
}

// respondConfirm creates the booking then hands back a payment link.
// Anonymous users get a login prompt instead; a duplicate request resolves
// to the reservation that already holds the boat-day.
func (s *serviceImpl) respondConfirm(ctx context.Context, req dto.ChatRequest, in intent.Intent, subject string) (dto.ChatResponse, error) {
	if subject == constant.Empty {
		return s.richReply(ctx, req, fallbackLogin, &dto.RichContent{
			Type: dto.RichContentQuickActions,
			Data: dto.QuickActionsData{
				Type: dto.RichContentQuickActions,
				Actions: []dto.QuickAction{
					{Label: "Entrar", Action: "login", Variant: "primary"},
					{Label: "Criar conta", Action: "signup", Variant: "outline"},
				},
			},
		}), nil
	}

	created, err := s.bookings.Create(ctx, bookingDto.CreateBookingRequest{
		BoatID:      in.EntityID,
		BookingDate: in.Date,
	})
	if err != nil {
		log.Error().Err(err).Msg("chat booking creation failed")

		return s.plainReply(ctx, req, fallbackBookingFail), nil
	}

	return s.respondPayment(ctx, req, created.Booking.ID)
}

func (s *serviceImpl) respondPayment(ctx context.Context, req dto.ChatRequest, bookingID string) (dto.ChatResponse, error) {
	session, err := s.escrow.CreateCheckoutSession(ctx, bookingID)
	if err != nil {
		// An outstanding session means the renter already has a link;
		// anything else degrades to prose.
		if failure.GetCode(err) == http.StatusConflict {
			return s.plainReply(ctx, req, "Já existe um pagamento em andamento para esta reserva. Verifique seu e-mail ou tente novamente mais tarde."), nil
		}

		log.Error().Err(err).Str("bookingID", bookingID).Msg("chat checkout session failed")

		return s.plainReply(ctx, req, fallbackBookingFail), nil
	}

	return s.richReply(ctx, req, fallbackPayment, &dto.RichContent{
		Type: dto.RichContentPaymentLink,
		Data: dto.PaymentLinkData{
			Type:      dto.RichContentPaymentLink,
			BookingID: session.BookingID,
			URL:       session.URL,
			Amount:    session.Amount,
			Note:      "O valor ficará retido e só será liberado após o check-in.",
		},
	}), nil
}

func (s *serviceImpl) respondSummary(ctx context.Context, req dto.ChatRequest, in intent.Intent, subject string) (dto.ChatResponse, error) {
	boat, err := s.boats.Get(ctx, in.EntityID)
	if err != nil {
		return s.plainReply(ctx, req, fallbackNoBoats), nil
	}

	date, err := timezone.ParseCalendarDate(in.Date)
	if err != nil {
		return s.plainReply(ctx, req, fallbackGreeting), nil
	}

	quote, err := s.pricing.QuoteBoatDay(ctx, boat.ID, boat.BasePriceDaily, date, subject)
	if err != nil {
		log.Error().Err(err).Str("boatID", boat.ID).Msg("chat pricing quote failed")

		return s.plainReply(ctx, req, fallbackBookingFail), nil
	}

	return s.richReply(ctx, req, fallbackSummary, &dto.RichContent{
		Type: dto.RichContentBookingSummary,
		Data: dto.BookingSummaryData{
			Type: dto.RichContentBookingSummary,
			Booking: dto.BookingSummaryBooking{
				BoatID:        boat.ID,
				BoatName:      boat.Name,
				Date:          in.Date,
				Passengers:    1,
				BasePrice:     quote.PriceBeforeDiscount,
				TotalPrice:    quote.Total,
				DepositAmount: boat.DepositAmount,
			},
		},
	}), nil
}

func (s *serviceImpl) respondCalendar(ctx context.Context, req dto.ChatRequest, boatID string) (dto.ChatResponse, error) {
	boat, err := s.boats.Get(ctx, boatID)
	if err != nil {
		return s.plainReply(ctx, req, fallbackNoBoats), nil
	}

	window, err := s.availability.Window(ctx, boat.ID, timezone.Today(), 0)
	if err != nil {
		log.Error().Err(err).Str("boatID", boat.ID).Msg("chat availability window failed")

		return s.plainReply(ctx, req, fallbackBookingFail), nil
	}

	return s.richReply(ctx, req, fallbackCalendar, &dto.RichContent{
		Type: dto.RichContentBookingCalendar,
		Data: dto.BookingCalendarData{
			Type:           dto.RichContentBookingCalendar,
			BoatID:         boat.ID,
			BoatName:       boat.Name,
			AvailableDates: window.Available,
			BlockedDates:   window.Blocked,
		},
	}), nil
}

func (s *serviceImpl) respondBoats(ctx context.Context, req dto.ChatRequest, category string) (dto.ChatResponse, error) {
	boats, err := s.boats.SearchActive(ctx, category, req.OwnerID, carouselLimit)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("chat boat search failed")

		return s.plainReply(ctx, req, fallbackBookingFail), nil
	}

	if len(boats) == 0 {
		return s.plainReply(ctx, req, fallbackNoBoats), nil
	}

	if len(boats) == 1 {
		return s.richReply(ctx, req, fallbackBoats, &dto.RichContent{
			Type: dto.RichContentBoatCard,
			Data: dto.BoatCardData{
				Type: dto.RichContentBoatCard,
				Boat: dto.BoatCardFromResponse(boats[0]),
			},
		}), nil
	}

	cards := make([]dto.BoatCardBoat, len(boats))
	for i, boat := range boats {
		cards[i] = dto.BoatCardFromResponse(boat)
	}

	return s.richReply(ctx, req, fallbackBoats, &dto.RichContent{
		Type: dto.RichContentBoatCarousel,
		Data: dto.BoatCarouselData{
			Type:  dto.RichContentBoatCarousel,
			Title: "Embarcações disponíveis",
			Boats: cards,
		},
	}), nil
}

func (s *serviceImpl) plainReply(ctx context.Context, req dto.ChatRequest, fallback string) dto.ChatResponse {
	return dto.ChatResponse{
		Message: dto.AssistantMessage{
			Role:    dto.RoleAssistant,
			Content: s.prose(ctx, req, fallback),
		},
	}
}

func (s *serviceImpl) richReply(ctx context.Context, req dto.ChatRequest, fallback string, rich *dto.RichContent) dto.ChatResponse {
	return dto.ChatResponse{
		Message: dto.AssistantMessage{
			Role:        dto.RoleAssistant,
			Content:     s.prose(ctx, req, fallback),
			RichContent: rich,
		},
	}
}

// prose asks the collaborator to phrase the reply and falls back to the
// canned copy on any failure. The structured outcome was already decided.
func (s *serviceImpl) prose(ctx context.Context, req dto.ChatRequest, fallback string) string {
	timeout := time.Duration(s.cfg.External.AI.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	system := systemPrompt
	if req.OwnerID != constant.Empty {
		system += fmt.Sprintf("\n\nVocê está na página de um proprietário específico (ID: %s). Foque apenas nas embarcações deste proprietário.", req.OwnerID)
	}

	messages := make([]ai.Message, 0, len(req.Messages)+2)
	messages = append(messages, ai.Message{Role: ai.RoleSystem, Content: system})

	for _, msg := range req.Messages {
		messages = append(messages, ai.Message{Role: msg.Role, Content: msg.Content})
	}

	messages = append(messages, ai.Message{
		Role:    ai.RoleSystem,
		Content: fmt.Sprintf("Responda em uma ou duas frases, transmitindo a seguinte informação: %s", fallback),
	})

	reply, err := s.assistant.Complete(ctx, messages)
	if err != nil {
		log.Warn().Err(err).Msg("assistant completion failed, using canned copy")

		return fallback
	}

	return reply
}
