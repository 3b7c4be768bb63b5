package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/shareit/shareit-backend/internal/api"
	"github.com/shareit/shareit-backend/internal/booking"
	"github.com/shareit/shareit-backend/internal/item"
	"github.com/shareit/shareit-backend/internal/itemrequest"
	"github.com/shareit/shareit-backend/internal/ratelimit"
	"github.com/shareit/shareit-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       zerolog.Logger

	// DBPool selects the PostgreSQL repositories. When nil every module
	// is backed by process memory.
	DBPool *pgxpool.Pool

	// Limiter is optional; nil disables rate limiting.
	Limiter ratelimit.Limiter

	// Clock defaults to the real clock.
	Clock clockwork.Clock
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine

	UserService        user.Service
	ItemService        item.Service
	ItemRequestService itemrequest.Service
	BookingService     booking.Service
}

type repositories struct {
	users    user.Repository
	items    item.Repository
	requests itemrequest.Repository
	bookings booking.Repository
}

func newRepositories(pool *pgxpool.Pool) repositories {
	if pool == nil {
		users := user.NewMemoryRepository()
		items := item.NewMemoryRepository()
		return repositories{
			users:    users,
			items:    items,
			requests: itemrequest.NewMemoryRepository(),
			bookings: booking.NewMemoryRepository(items, users),
		}
	}

	return repositories{
		users:    user.NewPgxRepository(pool),
		items:    item.NewPgxRepository(pool),
		requests: itemrequest.NewPgxRepository(pool),
		bookings: booking.NewPgxRepository(pool),
	}
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	repos := newRepositories(cfg.DBPool)

	// User Module
	userService := user.NewService(repos.users)

	// Item Module: reads booking history through the booking store.
	itemService := item.NewService(repos.items, userService, booking.NewItemBookingReader(repos.bookings), repos.requests, clock)

	// Item Request Module
	itemRequestService := itemrequest.NewService(repos.requests, repos.items, userService, clock)

	// Booking Module
	bookingService := booking.NewService(repos.bookings, userService, itemService, clock)

	var healthCheck func(ctx context.Context) error
	if cfg.DBPool != nil {
		healthCheck = cfg.DBPool.Ping
	}

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		Logger:             cfg.Logger,
		Limiter:            cfg.Limiter,
		HealthCheck:        healthCheck,
		UserService:        userService,
		ItemService:        itemService,
		ItemRequestService: itemRequestService,
		BookingService:     bookingService,
	})

	return &Container{
		Router:             router,
		UserService:        userService,
		ItemService:        itemService,
		ItemRequestService: itemRequestService,
		BookingService:     bookingService,
	}
}
