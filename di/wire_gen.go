// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"nautica/config"
	"nautica/infras/ai"
	"nautica/infras/jwt"
	"nautica/infras/kafka"
	"nautica/infras/otel"
	"nautica/infras/postgres"
	"nautica/infras/redis"
	"nautica/infras/s3"
	"nautica/infras/stripe"
	repository2 "nautica/internal/domains/availability/repository"
	service2 "nautica/internal/domains/availability/service"
	"nautica/internal/domains/boat/repository"
	"nautica/internal/domains/boat/service"
	repository3 "nautica/internal/domains/booking/repository"
	service5 "nautica/internal/domains/booking/service"
	service6 "nautica/internal/domains/chat/service"
	"nautica/internal/domains/intent"
	repository7 "nautica/internal/domains/owner/repository"
	repository6 "nautica/internal/domains/payment/repository"
	service4 "nautica/internal/domains/payment/service"
	"nautica/internal/domains/payment/webhook"
	repository4 "nautica/internal/domains/pricing/repository"
	service3 "nautica/internal/domains/pricing/service"
	repository5 "nautica/internal/domains/profile/repository"
	"nautica/internal/handlers/boat"
	"nautica/internal/handlers/booking"
	"nautica/internal/handlers/chat"
	webhook2 "nautica/internal/handlers/webhook"
	"nautica/shared/cache"
	"nautica/transport/http"
	"nautica/transport/http/middleware"
	"nautica/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryBoat := repository.New(connection, otelOtel)
	boatPhoto := repository.NewPhoto(connection, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceBoat := service.New(repositoryBoat, boatPhoto, s3S3, configConfig, redisCache, otelOtel)
	availabilityBlock := repository2.New(connection, otelOtel)
	repositoryBooking := repository3.New(connection, otelOtel)
	availability := service2.New(availabilityBlock, repositoryBooking, configConfig, otelOtel)
	handler := boat.New(serviceBoat, availability, otelOtel)
	pricingRule := repository4.New(connection, otelOtel)
	loyaltyProfile := repository5.New(connection, otelOtel)
	calendar := service3.NewCalendar(configConfig)
	pricing := service3.New(pricingRule, loyaltyProfile, calendar, otelOtel)
	payment := repository6.New(connection, otelOtel)
	owner := repository7.New(connection, otelOtel)
	stripeClient := stripe.New(configConfig, otelOtel)
	kafkaClient := kafka.New(configConfig)
	escrow := service4.New(payment, repositoryBooking, repositoryBoat, owner, stripeClient, kafkaClient, configConfig, otelOtel)
	serviceBooking := service5.New(repositoryBooking, repositoryBoat, pricing, escrow, kafkaClient, configConfig, otelOtel)
	bookingHandler := booking.New(serviceBooking, escrow, otelOtel)
	extractor := intent.NewKeywordExtractor(configConfig)
	aiClient := ai.New(configConfig, otelOtel)
	serviceChat := service6.New(extractor, serviceBoat, availability, serviceBooking, pricing, escrow, aiClient, configConfig, otelOtel)
	chatHandler := chat.New(serviceChat, otelOtel)
	webhookHandler := webhook.New(payment, repositoryBooking, kafkaClient, configConfig, otelOtel)
	handler2 := webhook2.New(webhookHandler, otelOtel)
	domainHandlers := router.DomainHandlers{
		Boat:    handler,
		Booking: bookingHandler,
		Chat:    chatHandler,
		Webhook: handler2,
	}
	jwtJWT := jwt.New(configConfig)
	auth := middleware.NewAuthMiddleware(jwtJWT, otelOtel)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	routerRouter := router.New(domainHandlers, auth, appMiddleware)
	httpHTTP := http.New(configConfig, routerRouter)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New, stripe.New, ai.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var boatDomain = wire.NewSet(repository.New, repository.NewPhoto, service.New)

var pricingDomain = wire.NewSet(repository4.New, repository5.New, service3.NewCalendar, service3.New)

var availabilityDomain = wire.NewSet(repository2.New, service2.New)

var bookingDomain = wire.NewSet(repository3.New, service5.New)

var paymentDomain = wire.NewSet(repository7.New, repository6.New, service4.New, webhook.New)

var chatDomain = wire.NewSet(intent.NewKeywordExtractor, service6.New)

var domains = wire.NewSet(
	boatDomain,
	pricingDomain,
	availabilityDomain,
	bookingDomain,
	paymentDomain,
	chatDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), boat.New, booking.New, chat.New, webhook2.New, router.New)
