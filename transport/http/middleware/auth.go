package middleware

import (
	"net/http"
	"todos/config"
	"todos/infras/jwt"
	"todos/infras/otel"
	"todos/permissions"
	"todos/shared/cache"
	"todos/shared/constant"
	"todos/shared/failure"
	"todos/shared/identity"
	"todos/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth resolves the caller identity from the bearer token.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	cache      cache.RedisCache
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthMiddleware(jwtService jwt.JWT, cache cache.RedisCache, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) Auth {
	return &authImpl{
		jwtService: jwtService,
		cache:      cache,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

func unauthorized(writer http.ResponseWriter) {
	response.WithError(writer, failure.Unauthorized(constant.ResponseErrorCredentials))
}

// Auth rejects requests to protected routes that carry no valid, unrevoked
// access token. Public routes and a disabled auth config pass through
// without an identity.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !m.cfg.App.Auth.Enable {
			next.ServeHTTP(writer, request)

			return
		}

		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		method := request.Method

		var path string
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.Routes != nil {
			path = rctx.Routes.Find(chi.NewRouteContext(), method, request.URL.Path)
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     method,
		})

		// unknown routes fall through to the router's 404/405
		if path == "" || (m.permission != nil && m.permission.IsPublic(path, method)) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("rejected request without bearer token")
			scope.TraceError(err)
			scope.End()
			unauthorized(writer)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("rejected request with invalid token")
			scope.TraceError(err)
			scope.End()
			unauthorized(writer)

			return
		}

		if claims.UserID <= 0 || claims.TokenID == "" {
			log.Error().Msg("JWT claims: user id or token id is empty")
			scope.End()
			unauthorized(writer)

			return
		}

		revoked, err := m.cache.Exists(ctx, cache.RevokedTokenKey(claims.TokenID))
		if err != nil {
			// fail open while the revocation store is unreachable
			log.Warn().Err(err).Msg("failed to check token revocation")
		}

		if revoked {
			scope.End()
			unauthorized(writer)

			return
		}

		caller := identity.Identity{
			ID:       claims.UserID,
			Username: claims.Subject,
			TokenID:  claims.TokenID,
		}
		if claims.ExpiresAt != nil {
			caller.ExpiresAt = claims.ExpiresAt.Time
		}

		scope.SetAttribute("user.id", caller.ID)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(identity.WithContext(request.Context(), caller)))
	})
}
