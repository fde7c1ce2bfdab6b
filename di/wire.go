//go:build wireinject
// +build wireinject

package di

import (
	"todos/config"
	"todos/infras/jwt"
	"todos/infras/kafka"
	"todos/infras/otel"
	"todos/infras/postgres"
	"todos/infras/redis"
	"todos/permissions"
	"todos/shared/cache"
	"todos/transport/http"
	"todos/transport/http/middleware"
	"todos/transport/http/router"
	"todos/transport/http/state"

	authService "todos/internal/domains/auth/service"
	todoRepository "todos/internal/domains/todo/repository"
	todoService "todos/internal/domains/todo/service"
	userRepository "todos/internal/domains/user/repository"
	userService "todos/internal/domains/user/service"
	authHandler "todos/internal/handlers/auth"
	healthHandler "todos/internal/handlers/health"
	todoHandler "todos/internal/handlers/todo"
	userHandler "todos/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	state.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	todoDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	userHandler.New,
	todoHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}
