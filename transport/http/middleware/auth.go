package middleware

import (
	"context"
	"errors"
	"net/http"

	"nautica/infras/jwt"
	"nautica/infras/otel"
	"nautica/shared/constant"
	"nautica/shared/failure"
	"nautica/transport/http/response"
)

// Auth guards routes with JWT bearer tokens. Required guards every request;
// Optional resolves claims when a token is present but lets anonymous
// requests through, which the chat endpoint needs for pre-login browsing.
type Auth interface {
	Required(http.Handler) http.Handler
	Optional(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

func (m *authImpl) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		claims, err := m.resolveClaims(request)
		if err != nil {
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		scope.End()
		next.ServeHTTP(writer, request.WithContext(withClaims(ctx, claims)))
	})
}

func (m *authImpl) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.optional.middleware")

		if request.Header.Get(constant.RequestHeaderAuthorization) == constant.Empty {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		// A token was sent, so a bad one is still rejected. Silently
		// downgrading a malformed token to anonymous would mask client bugs.
		claims, err := m.resolveClaims(request)
		if err != nil {
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		scope.End()
		next.ServeHTTP(writer, request.WithContext(withClaims(ctx, claims)))
	})
}

func (m *authImpl) resolveClaims(request *http.Request) (*jwt.Claims, error) {
	authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
	if authHeader == constant.Empty {
		return nil, failure.Unauthorized("Missing authorization header")
	}

	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		var message string

		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			message = "Token has expired"
		case errors.Is(err, jwt.ErrInvalidToken):
			message = "Invalid token"
		default:
			message = "Token validation failed"
		}

		return nil, failure.Unauthorized(message)
	}

	if claims.UserID == constant.Empty {
		return nil, failure.Unauthorized("Invalid token claims")
	}

	return claims, nil
}

func withClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)

	return ctx
}
