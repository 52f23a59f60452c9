//go:build wireinject
// +build wireinject

package di

import (
	"hms/config"
	"hms/infras/jwt"
	"hms/infras/kafka"
	"hms/infras/mailer"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/infras/redis"
	"hms/permissions"
	"hms/shared/cache"
	"hms/transport/http"
	"hms/transport/http/middleware"
	"hms/transport/http/router"

	authService "hms/internal/domains/auth/service"
	bookingRepository "hms/internal/domains/booking/repository"
	bookingService "hms/internal/domains/booking/service"
	contactRepository "hms/internal/domains/contact/repository"
	contactService "hms/internal/domains/contact/service"
	roomRepository "hms/internal/domains/room/repository"
	roomService "hms/internal/domains/room/service"
	userRepository "hms/internal/domains/user/repository"
	userService "hms/internal/domains/user/service"

	bookingHandler "hms/internal/handlers/booking"
	contactHandler "hms/internal/handlers/contact"
	healthHandler "hms/internal/handlers/health"
	roomHandler "hms/internal/handlers/room"
	userHandler "hms/internal/handlers/user"

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
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var domains = wire.NewSet(
	userDomain,
	roomDomain,
	bookingDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	contactHandler.New,
	healthHandler.New,
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
