//go:build wireinject
// +build wireinject

package di

import (
	"railstay/config"
	"railstay/infras/jwt"
	"railstay/infras/kafka"
	"railstay/infras/otel"
	"railstay/infras/postgres"
	"railstay/infras/redis"
	"railstay/permissions"
	"railstay/shared/cache"
	"railstay/transport/http"
	"railstay/transport/http/middleware"
	"railstay/transport/http/router"

	"github.com/google/wire"

	authService "railstay/internal/domains/auth/service"
	userRepository "railstay/internal/domains/user/repository"
	userService "railstay/internal/domains/user/service"

	trainRepository "railstay/internal/domains/train/repository"
	trainService "railstay/internal/domains/train/service"

	hotelRepository "railstay/internal/domains/hotel/repository"
	hotelService "railstay/internal/domains/hotel/service"

	bookingRepository "railstay/internal/domains/booking/repository"
	bookingService "railstay/internal/domains/booking/service"

	passengerRepository "railstay/internal/domains/passenger/repository"

	notificationRepository "railstay/internal/domains/notification/repository"
	notificationService "railstay/internal/domains/notification/service"

	analyticsRepository "railstay/internal/domains/analytics/repository"
	analyticsService "railstay/internal/domains/analytics/service"

	analyticsHandler "railstay/internal/handlers/analytics"
	authHandler "railstay/internal/handlers/auth"
	bookingHandler "railstay/internal/handlers/booking"
	hotelHandler "railstay/internal/handlers/hotel"
	notificationHandler "railstay/internal/handlers/notification"
	trainHandler "railstay/internal/handlers/train"
	userHandler "railstay/internal/handlers/user"
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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var trainDomain = wire.NewSet(
	trainRepository.New,
	trainService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	passengerRepository.New,
	bookingService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var analyticsDomain = wire.NewSet(
	analyticsRepository.New,
	analyticsService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	trainDomain,
	hotelDomain,
	bookingDomain,
	notificationDomain,
	analyticsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	trainHandler.New,
	hotelHandler.New,
	bookingHandler.New,
	notificationHandler.New,
	userHandler.New,
	analyticsHandler.New,
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
