package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	validator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/windsor-dist/storefront-api/internal/cart"
	"github.com/windsor-dist/storefront-api/internal/catalog"
	"github.com/windsor-dist/storefront-api/internal/checkout"
	"github.com/windsor-dist/storefront-api/internal/config"
	"github.com/windsor-dist/storefront-api/internal/discount"
	"github.com/windsor-dist/storefront-api/internal/events"
	"github.com/windsor-dist/storefront-api/internal/health"
	"github.com/windsor-dist/storefront-api/internal/obs"
	"github.com/windsor-dist/storefront-api/internal/order"
	"github.com/windsor-dist/storefront-api/internal/pricing"
	"github.com/windsor-dist/storefront-api/internal/quote"
	"github.com/windsor-dist/storefront-api/internal/ratelimit"
	"github.com/windsor-dist/storefront-api/internal/security"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, nil)

	tracingEnabled := cfg.TracingEnabled
	if tracingEnabled {
		shutdown, err := obs.InitTracer(context.Background(), obs.TracingConfig{
			ServiceName:   "storefront-api",
			Endpoint:      cfg.TracingEndpoint,
			Exporter:      cfg.TracingExporter,
			SamplingRatio: cfg.TracingSampleRatio,
			Environment:   cfg.AppEnv,
		})
		if err != nil {
			logger.Error().Err(err).Msg("initialise tracing")
			tracingEnabled = false
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("shutdown tracer")
				}
			}()
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("parse redis url")
		}
		redisClient = redis.NewClient(redisOpts)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error().Err(err).Msg("close redis")
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Msg("ping redis")
		}
		cancel()
	} else {
		logger.Info().Msg("redis disabled, catalog cache and rate limiting are off")
	}

	catalogService, err := catalog.NewService(catalog.ServiceConfig{
		Products: catalog.SeedProducts(),
		Cache:    catalog.NewCache(redisClient, cfg.CatalogCacheTTL),
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("initialise catalog service")
	}
	catalogHandler := catalog.NewHandler(catalogService)

	validate := validator.New()
	rules := discount.NewRegistry(discount.SeedRules()...)

	bus := &events.Bus{Notifiers: []events.Notifier{logNotifier{logger: logger}}}

	cartSvc := &cart.Service{
		Store:    cart.NewMemoryStore(),
		Catalog:  catalogService,
		Rules:    rules,
		VATRate:  cfg.VATRate,
		Shipping: pricing.Money(cfg.ShippingFlatRate),
	}
	cartHandler := &cart.Handler{Service: cartSvc, Validate: validate, Events: bus}

	orderStore := order.NewStore()
	orderHandler := &order.Handler{Store: orderStore, Validate: validate, Events: bus}

	checkoutSvc := &checkout.Service{Carts: cartSvc, Orders: orderStore, Rules: rules}
	checkoutHandler := &checkout.Handler{Service: checkoutSvc, Validate: validate, Events: bus}

	quoteHandler := &quote.Handler{Catalog: catalogService, Validate: validate}

	httpMetrics := obs.NewHTTPMetrics(cfg.MetricsNamespace, nil, nil)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(obs.RoutePatternMiddleware)
	if tracingEnabled {
		r.Use(obs.TracingMiddleware)
	}
	r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(security.Headers{Enable: true}.Middleware)
	r.Use(security.BodyLimit{Max: 1 << 20}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(cfg),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "X-Total-Count"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.Handler())

	healthHandler := health.Handler{RedisTimeout: 300 * time.Millisecond}
	if redisClient != nil {
		healthHandler.Checker = readinessChecker{redis: redisClient}
	}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	quoteLimiter := ratelimit.Handler{
		Limiter: ratelimit.Limiter{Client: redisClient, Prefix: "ratelimit:quotes:"},
		Config: ratelimit.Config{
			Key:    func(r *http.Request) string { return r.RemoteAddr },
			Window: time.Minute,
			Max:    120,
		},
		OnError: func(err error) { logger.Error().Err(err).Msg("rate limit check") },
	}

	r.Route("/api/v1", func(v chi.Router) {
		v.Get("/products", catalogHandler.Products)
		v.Get("/products/{id}", catalogHandler.ProductDetail)

		v.With(quoteLimiter.Middleware).Post("/quotes", quoteHandler.Price)

		v.Route("/carts", func(c chi.Router) {
			c.Post("/", cartHandler.Create)
			c.Route("/{cartID}", func(g chi.Router) {
				g.Get("/", cartHandler.Get)
				g.Post("/items", cartHandler.AddItem)
				g.Patch("/items/{itemID}", cartHandler.UpdateItem)
				g.Delete("/items/{itemID}", cartHandler.RemoveItem)
				g.Post("/discount", cartHandler.ApplyDiscount)
				g.Delete("/discount", cartHandler.RemoveDiscount)
			})
		})

		v.Post("/checkout", checkoutHandler.PlaceOrder)

		v.Route("/orders", func(o chi.Router) {
			o.Get("/", orderHandler.List)
			o.Get("/{orderID}", orderHandler.Detail)
			o.Post("/{orderID}/status", orderHandler.Advance)
		})
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server exited unexpectedly")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	health.SetReady(false)
	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown")
	}
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}

// logNotifier writes emitted domain events to the structured log.
type logNotifier struct {
	logger zerolog.Logger
}

func (n logNotifier) Notify(_ context.Context, event events.Event) error {
	n.logger.Info().
		Str("topic", event.Topic).
		Str("aggregate_id", event.AggregateID).
		RawJSON("payload", event.Payload).
		Msg("domain_event")
	return nil
}

type readinessChecker struct {
	redis *redis.Client
}

func (c readinessChecker) PingRedis(ctx context.Context, timeout time.Duration) error {
	if c.redis == nil {
		return errors.New("redis not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.redis.Ping(ctx).Err()
}
