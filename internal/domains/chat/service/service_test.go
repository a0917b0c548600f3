package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nautica/config"
	aiMocks "nautica/infras/ai/mocks"
	"nautica/infras/otel/mocks"
	availabilityDto "nautica/internal/domains/availability/model/dto"
	availabilityServiceMocks "nautica/internal/domains/availability/service/mocks"
	boatDto "nautica/internal/domains/boat/model/dto"
	boatServiceMocks "nautica/internal/domains/boat/service/mocks"
	bookingDto "nautica/internal/domains/booking/model/dto"
	bookingServiceMocks "nautica/internal/domains/booking/service/mocks"
	chatDto "nautica/internal/domains/chat/model/dto"
	"nautica/internal/domains/chat/service"
	"nautica/internal/domains/intent"
	intentMocks "nautica/internal/domains/intent/mocks"
	paymentDto "nautica/internal/domains/payment/model/dto"
	paymentServiceMocks "nautica/internal/domains/payment/service/mocks"
	pricingDto "nautica/internal/domains/pricing/model/dto"
	pricingServiceMocks "nautica/internal/domains/pricing/service/mocks"
	"nautica/shared/constant"
	"nautica/shared/failure"
	"nautica/shared/money"
)

type chatMockSet struct {
	extractor    *intentMocks.MockExtractor
	boats        *boatServiceMocks.MockBoat
	availability *availabilityServiceMocks.MockAvailability
	bookings     *bookingServiceMocks.MockBooking
	pricing      *pricingServiceMocks.MockPricing
	escrow       *paymentServiceMocks.MockEscrow
	assistant    *aiMocks.MockClient
}

func newChatService(t *testing.T) (service.Chat, *chatMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	set := &chatMockSet{
		extractor:    intentMocks.NewMockExtractor(ctrl),
		boats:        boatServiceMocks.NewMockBoat(ctrl),
		availability: availabilityServiceMocks.NewMockAvailability(ctrl),
		bookings:     bookingServiceMocks.NewMockBooking(ctrl),
		pricing:      pricingServiceMocks.NewMockPricing(ctrl),
		escrow:       paymentServiceMocks.NewMockEscrow(ctrl),
		assistant:    aiMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.External.AI.TimeoutSeconds = 5

	svc := service.New(set.extractor, set.boats, set.availability, set.bookings, set.pricing, set.escrow, set.assistant, cfg, mocks.NewOtel())

	return svc, set
}

func userSays(text string) chatDto.ChatRequest {
	return chatDto.ChatRequest{
		Messages: []chatDto.Message{{Role: chatDto.RoleUser, Content: text}},
	}
}

func TestChatService_Respond_Greeting(t *testing.T) {
	svc, set := newChatService(t)

	set.extractor.EXPECT().
		Extract("oi").
		Return(intent.Intent{})

	set.assistant.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("Olá! Como posso ajudar?", nil)

	res, err := svc.Respond(context.Background(), userSays("oi"))

	assert.NoError(t, err)
	assert.Equal(t, chatDto.RoleAssistant, res.Message.Role)
	assert.Equal(t, "Olá! Como posso ajudar?", res.Message.Content)
	assert.Nil(t, res.Message.RichContent)
}

func TestChatService_Respond_AssistantDownFallsBackToCannedCopy(t *testing.T) {
	svc, set := newChatService(t)

	set.extractor.EXPECT().
		Extract(gomock.Any()).
		Return(intent.Intent{})

	set.assistant.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("", assert.AnError)

	res, err := svc.Respond(context.Background(), userSays("oi"))

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Message.Content)
}

func TestChatService_Respond_Category(t *testing.T) {
	sailboat := boatDto.BoatResponse{ID: "boat-1", Name: "Veleiro Azul", Category: "sailboat"}
	yacht := boatDto.BoatResponse{ID: "boat-2", Name: "Iate Branco", Category: "yacht"}

	t.Run("single match renders a card", func(t *testing.T) {
		svc, set := newChatService(t)

		set.extractor.EXPECT().
			Extract(gomock.Any()).
			Return(intent.Intent{Category: "sailboat"})

		set.boats.EXPECT().
			SearchActive(gomock.Any(), "sailboat", "", 5).
			Return([]boatDto.BoatResponse{sailboat}, nil)

		set.assistant.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("Encontrei este veleiro.", nil)

		res, err := svc.Respond(context.Background(), userSays("tem veleiro?"))

		assert.NoError(t, err)
		assert.NotNil(t, res.Message.RichContent)
		assert.Equal(t, chatDto.RichContentBoatCard, res.Message.RichContent.Type)
	})

	t.Run("several matches render a carousel", func(t *testing.T) {
		svc, set := newChatService(t)

		set.extractor.EXPECT().
			Extract(gomock.Any()).
			Return(intent.Intent{Category: "yacht"})

		set.boats.EXPECT().
			SearchActive(gomock.Any(), "yacht", "", 5).
			Return([]boatDto.BoatResponse{sailboat, yacht}, nil)

		set.assistant.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("Temos estas opções.", nil)

		res, err := svc.Respond(context.Background(), userSays("quero um iate"))

		assert.NoError(t, err)
		assert.Equal(t, chatDto.RichContentBoatCarousel, res.Message.RichContent.Type)
	})

	t.Run("no matches stay prose-only", func(t *testing.T) {
		svc, set := newChatService(t)

		set.extractor.EXPECT().
			Extract(gomock.Any()).
			Return(intent.Intent{Category: "pontoon"})

		set.boats.EXPECT().
			SearchActive(gomock.Any(), "pontoon", "", 5).
			Return(nil, nil)

		set.assistant.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("Nada encontrado.", nil)

		res, err := svc.Respond(context.Background(), userSays("tem pontão?"))

		assert.NoError(t, err)
		assert.Nil(t, res.Message.RichContent)
	})
}

func TestChatService_Respond_Calendar(t *testing.T) {
	svc, set := newChatService(t)

	set.extractor.EXPECT().
		Extract(gomock.Any()).
		Return(intent.Intent{EntityID: "boat-1"})

	set.boats.EXPECT().
		Get(gomock.Any(), "boat-1").
		Return(boatDto.BoatResponse{ID: "boat-1", Name: "Veleiro Azul"}, nil)

	set.availability.EXPECT().
		Window(gomock.Any(), "boat-1", gomock.Any(), 0).
		Return(availabilityDto.WindowResponse{
			BoatID:    "boat-1",
			Available: []string{"2026-09-05"},
			Blocked:   []string{"2026-09-06"},
		}, nil)

	set.assistant.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("Veja a agenda.", nil)

	res, err := svc.Respond(context.Background(), userSays("agenda do barco boat-1"))

	assert.NoError(t, err)
	assert.Equal(t, chatDto.RichContentBookingCalendar, res.Message.RichContent.Type)

	data, ok := res.Message.RichContent.Data.(chatDto.BookingCalendarData)
	assert.True(t, ok)
	assert.Equal(t, []string{"2026-09-05"}, data.AvailableDates)
}

func TestChatService_Respond_Summary(t *testing.T) {
	svc, set := newChatService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "renter-1")

	set.extractor.EXPECT().
		Extract(gomock.Any()).
		Return(intent.Intent{EntityID: "boat-1", Date: "2026-09-05"})

	set.boats.EXPECT().
		Get(gomock.Any(), "boat-1").
		Return(boatDto.BoatResponse{ID: "boat-1", Name: "Veleiro Azul", BasePriceDaily: money.FromCents(100000)}, nil)

	set.pricing.EXPECT().
		QuoteBoatDay(gomock.Any(), "boat-1", money.FromCents(100000), gomock.Any(), "renter-1").
		Return(pricingDto.Breakdown{
			PriceBeforeDiscount: money.FromCents(120000),
			Total:               money.FromCents(120000),
		}, nil)

	set.assistant.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("Aqui está o resumo.", nil)

	res, err := svc.Respond(ctx, userSays("barco boat-1 em 2026-09-05"))

	assert.NoError(t, err)
	assert.Equal(t, chatDto.RichContentBookingSummary, res.Message.RichContent.Type)
}

func TestChatService_Respond_Confirm(t *testing.T) {
	confirm := intent.Intent{EntityID: "boat-1", Date: "2026-09-05", Confirm: true}

	t.Run("anonymous user is asked to sign in", func(t *testing.T) {
		svc, set := newChatService(t)

		set.extractor.EXPECT().
			Extract(gomock.Any()).
			Return(confirm)

		set.assistant.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("Entre na sua conta para continuar.", nil)

		res, err := svc.Respond(context.Background(), userSays("confirmo a reserva"))

		assert.NoError(t, err)
		assert.Equal(t, chatDto.RichContentQuickActions, res.Message.RichContent.Type)
	})

	t.Run("authenticated confirm books and links the payment", func(t *testing.T) {
		svc, set := newChatService(t)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "renter-1")

		set.extractor.EXPECT().
			Extract(gomock.Any()).
			Return(confirm)

		set.bookings.EXPECT().
			Create(gomock.Any(), bookingDto.CreateBookingRequest{BoatID: "boat-1", BookingDate: "2026-09-05"}).
			Return(bookingDto.CreateBookingResult{Booking: bookingDto.BookingResponse{ID: "booking-1"}}, nil)

		set.escrow.EXPECT().
			CreateCheckoutSession(gomock.Any(), "booking-1").
			Return(paymentDto.CheckoutSessionResponse{
				BookingID: "booking-1",
				Amount:    money.FromCents(30000),
				URL:       "https://pay.example.com/cs_1",
			}, nil)

		set.assistant.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("Reserva garantida!", nil)

		res, err := svc.Respond(ctx, userSays("confirmo a reserva"))

		assert.NoError(t, err)
		assert.Equal(t, chatDto.RichContentPaymentLink, res.Message.RichContent.Type)

		data, ok := res.Message.RichContent.Data.(chatDto.PaymentLinkData)
		assert.True(t, ok)
		assert.Equal(t, "https://pay.example.com/cs_1", data.URL)
	})

	t.Run("booking failure degrades to prose", func(t *testing.T) {
		svc, set := newChatService(t)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "renter-1")

		set.extractor.EXPECT().
			Extract(gomock.Any()).
			Return(confirm)

		set.bookings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(bookingDto.CreateBookingResult{}, assert.AnError)

		set.assistant.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("Não consegui concluir.", nil)

		res, err := svc.Respond(ctx, userSays("confirmo a reserva"))

		assert.NoError(t, err)
		assert.Nil(t, res.Message.RichContent)
	})
}

func TestChatService_Respond_Payment(t *testing.T) {
	t.Run("outstanding session is explained in prose", func(t *testing.T) {
		svc, set := newChatService(t)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "renter-1")

		set.extractor.EXPECT().
			Extract(gomock.Any()).
			Return(intent.Intent{EntityID: "booking-1", Payment: true})

		set.escrow.EXPECT().
			CreateCheckoutSession(gomock.Any(), "booking-1").
			Return(paymentDto.CheckoutSessionResponse{}, failure.Conflict("an outstanding payment already exists for this booking"))

		set.assistant.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("Já existe um pagamento em andamento.", nil)

		res, err := svc.Respond(ctx, userSays("quero pagar booking-1"))

		assert.NoError(t, err)
		assert.Nil(t, res.Message.RichContent)
	})
}
