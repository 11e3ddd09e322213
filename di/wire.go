//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"roam/config"
	"roam/infras/jwt"
	"roam/infras/kafka"
	"roam/infras/otel"
	"roam/infras/postgres"
	"roam/infras/redis"
	"roam/infras/s3"
	"roam/permissions"
	"roam/shared/cache"
	"roam/transport/http"
	"roam/transport/http/middleware"
	"roam/transport/http/router"

	authService "roam/internal/domains/auth/service"
	locationRepository "roam/internal/domains/location/repository"
	locationService "roam/internal/domains/location/service"
	reservationRepository "roam/internal/domains/reservation/repository"
	reservationService "roam/internal/domains/reservation/service"
	reviewRepository "roam/internal/domains/review/repository"
	reviewService "roam/internal/domains/review/service"
	roomRepository "roam/internal/domains/room/repository"
	roomService "roam/internal/domains/room/service"
	userRepository "roam/internal/domains/user/repository"
	userService "roam/internal/domains/user/service"

	authHandler "roam/internal/handlers/auth"
	locationHandler "roam/internal/handlers/location"
	reservationHandler "roam/internal/handlers/reservation"
	reviewHandler "roam/internal/handlers/review"
	roomHandler "roam/internal/handlers/room"
	userHandler "roam/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTxn,
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
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var locationDomain = wire.NewSet(
	locationRepository.New,
	locationService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	locationDomain,
	roomDomain,
	reservationDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	locationHandler.New,
	roomHandler.New,
	reservationHandler.New,
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
