package router

import (
	"github.com/go-chi/chi/v5"

	"nautica/internal/handlers/boat"
	"nautica/internal/handlers/booking"
	"nautica/internal/handlers/chat"
	"nautica/internal/handlers/webhook"
	"nautica/transport/http/middleware"
)

type DomainHandlers struct {
	Boat    boat.Handler
	Booking booking.Handler
	Chat    chat.Handler
	Webhook webhook.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
	App            middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.Tracing)
	router.Use(r.App.RateLimit)

	router.Route("/v1", func(routerGroup chi.Router) {
		// Boat discovery and webhook delivery are unauthenticated. The
		// webhook proves itself with its signature instead of a token.
		routerGroup.Group(func(public chi.Router) {
			r.DomainHandlers.Boat.Router(public)
			r.DomainHandlers.Webhook.Router(public)
		})

		routerGroup.Group(func(optional chi.Router) {
			optional.Use(r.Auth.Optional)
			r.DomainHandlers.Chat.Router(optional)
		})

		routerGroup.Group(func(private chi.Router) {
			private.Use(r.Auth.Required)
			r.DomainHandlers.Booking.Router(private)
		})
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth, app middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
		App:            app,
	}
}
