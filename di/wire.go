//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"teesheet/config"
	"teesheet/infras/otel"
	"teesheet/infras/redis"
	"teesheet/shared/cache"
	"teesheet/transport/http"
	"teesheet/transport/http/middleware"
	"teesheet/transport/http/router"

	bookingRepository "teesheet/internal/domains/booking/repository"
	bookingService "teesheet/internal/domains/booking/service"
	courseRepository "teesheet/internal/domains/course/repository"
	courseService "teesheet/internal/domains/course/service"

	bookingHandler "teesheet/internal/handlers/booking"
	courseHandler "teesheet/internal/handlers/course"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var courseDomain = wire.NewSet(
	courseRepository.New,
	courseService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	courseDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	courseHandler.New,
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
