//go:build wireinject
// +build wireinject

package di

import (
	"riverstay/config"
	"riverstay/infras/jwt"
	"riverstay/infras/kafka"
	"riverstay/infras/otel"
	"riverstay/infras/postgres"
	"riverstay/infras/redis"
	"riverstay/infras/s3"
	"riverstay/permissions"
	"riverstay/shared/cache"
	"riverstay/transport/http"
	"riverstay/transport/http/middleware"
	"riverstay/transport/http/router"

	"github.com/google/wire"

	authService "riverstay/internal/domains/auth/service"
	bookingRepository "riverstay/internal/domains/booking/repository"
	bookingService "riverstay/internal/domains/booking/service"
	reviewRepository "riverstay/internal/domains/review/repository"
	reviewService "riverstay/internal/domains/review/service"
	roomRepository "riverstay/internal/domains/room/repository"
	roomService "riverstay/internal/domains/room/service"
	userRepository "riverstay/internal/domains/user/repository"
	userService "riverstay/internal/domains/user/service"

	authHandler "riverstay/internal/handlers/auth"
	bookingHandler "riverstay/internal/handlers/booking"
	reviewHandler "riverstay/internal/handlers/review"
	roomHandler "riverstay/internal/handlers/room"
	userHandler "riverstay/internal/handlers/user"
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
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	roomDomain,
	bookingDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	reviewHandler.New,
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
