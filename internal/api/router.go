package api

import (
	"context"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/shareit/shareit-backend/internal/auth"
	"github.com/shareit/shareit-backend/internal/booking"
	bookingHttp "github.com/shareit/shareit-backend/internal/booking/http"
	"github.com/shareit/shareit-backend/internal/item"
	itemHttp "github.com/shareit/shareit-backend/internal/item/http"
	"github.com/shareit/shareit-backend/internal/itemrequest"
	itemRequestHttp "github.com/shareit/shareit-backend/internal/itemrequest/http"
	"github.com/shareit/shareit-backend/internal/metrics"
	"github.com/shareit/shareit-backend/internal/pkg/request"
	"github.com/shareit/shareit-backend/internal/ratelimit"
	"github.com/shareit/shareit-backend/internal/user"
	userHttp "github.com/shareit/shareit-backend/internal/user/http"
)

// Config holds the dependencies required to build the router.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       zerolog.Logger

	// Limiter throttles requests per actor. Nil disables rate limiting.
	Limiter ratelimit.Limiter
	// HealthCheck probes the backing store. Nil means always healthy.
	HealthCheck func(ctx context.Context) error

	UserService        user.Service
	ItemService        item.Service
	ItemRequestService itemrequest.Service
	BookingService     booking.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (request id, logging, metrics, rate limit, CORS) and registers the routes of every module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	request.RegisterValidators()
	metrics.Register()

	r := gin.New()

	// Global Middleware:
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	// - RequestID / RequestLogger: One structured log line per request, tagged with its id.
	// - Metrics: Request counters and latency histograms per route.
	r.Use(gin.Recovery(), RequestID(), RequestLogger(cfg.Logger), Metrics())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", auth.HeaderUserID, HeaderRequestID}
	r.Use(cors.New(corsConfig))

	// Operational endpoints are not rate limited.
	r.GET("/healthz", Health(cfg.HealthCheck))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes := r.Group("")
	if cfg.Limiter != nil {
		routes.Use(RateLimit(cfg.Limiter))
	}

	// sharerMiddleware: Requires a valid X-Sharer-User-Id header.
	sharerMiddleware := auth.SharerRequired()

	userHttp.RegisterRoutes(routes, userHttp.NewHandler(cfg.UserService))
	itemHttp.RegisterRoutes(routes, itemHttp.NewHandler(cfg.ItemService), sharerMiddleware)
	itemRequestHttp.RegisterRoutes(routes, itemRequestHttp.NewHandler(cfg.ItemRequestService), sharerMiddleware)
	bookingHttp.RegisterRoutes(routes, bookingHttp.NewHandler(cfg.BookingService), sharerMiddleware)

	return r
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
