//go:build wireinject
// +build wireinject

package di

import (
	"nautica/config"
	"nautica/infras/ai"
	"nautica/infras/jwt"
	"nautica/infras/kafka"
	"nautica/infras/otel"
	"nautica/infras/postgres"
	"nautica/infras/redis"
	"nautica/infras/s3"
	"nautica/infras/stripe"
	"nautica/shared/cache"
	"nautica/transport/http"
	"nautica/transport/http/middleware"
	"nautica/transport/http/router"

	"github.com/google/wire"

	availabilityRepository "nautica/internal/domains/availability/repository"
	availabilityService "nautica/internal/domains/availability/service"
	boatRepository "nautica/internal/domains/boat/repository"
	boatService "nautica/internal/domains/boat/service"
	bookingRepository "nautica/internal/domains/booking/repository"
	bookingService "nautica/internal/domains/booking/service"
	chatService "nautica/internal/domains/chat/service"
	"nautica/internal/domains/intent"
	ownerRepository "nautica/internal/domains/owner/repository"
	paymentRepository "nautica/internal/domains/payment/repository"
	paymentService "nautica/internal/domains/payment/service"
	"nautica/internal/domains/payment/webhook"
	pricingRepository "nautica/internal/domains/pricing/repository"
	pricingService "nautica/internal/domains/pricing/service"
	profileRepository "nautica/internal/domains/profile/repository"

	boatHandler "nautica/internal/handlers/boat"
	bookingHandler "nautica/internal/handlers/booking"
	chatHandler "nautica/internal/handlers/chat"
	webhookHandler "nautica/internal/handlers/webhook"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	stripe.New,
	ai.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var boatDomain = wire.NewSet(
	boatRepository.New,
	boatRepository.NewPhoto,
	boatService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	profileRepository.New,
	pricingService.NewCalendar,
	pricingService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	ownerRepository.New,
	paymentRepository.New,
	paymentService.New,
	webhook.New,
)

var chatDomain = wire.NewSet(
	intent.NewKeywordExtractor,
	chatService.New,
)

var domains = wire.NewSet(
	boatDomain,
	pricingDomain,
	availabilityDomain,
	bookingDomain,
	paymentDomain,
	chatDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	boatHandler.New,
	bookingHandler.New,
	chatHandler.New,
	webhookHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
