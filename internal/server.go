package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gymenergy/internal/config"
	"github.com/2beens/gymenergy/internal/db"
	"github.com/2beens/gymenergy/internal/gymstats/achievements"
	"github.com/2beens/gymenergy/internal/gymstats/energy"
	"github.com/2beens/gymenergy/internal/gymstats/settings"
	"github.com/2beens/gymenergy/internal/gymstats/tracker"
	"github.com/2beens/gymenergy/internal/gymstats/workouts"
	"github.com/2beens/gymenergy/internal/middleware"
	"github.com/2beens/gymenergy/internal/telemetry/metrics"
	"github.com/2beens/gymenergy/internal/telemetry/tracing"
	"github.com/2beens/gymenergy/pkg"
)

const rateLimitRouterName = "gymstats"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	trackerService *tracker.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.Secrets.PostgresPassword,
		MaxConns:       cfg.PostgresMaxConns,
		TracingEnabled: cfg.Secrets.HoneycombEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymenergy", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // set to 1 once both servers are started

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: cfg.Secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(cfg.Secrets.HoneycombEnabled, cfg.Secrets.OtelServiceName, rdb)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	workoutsRepo := workouts.NewRepo(dbPool)
	if err := workoutsRepo.EnsureSchema(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("ensure workouts schema: %w", err)
	}
	if err := workoutsRepo.SeedCatalog(ctx, workouts.Catalog()); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("seed exercise catalog: %w", err)
	}

	defaultSettings, err := defaultSettingsFromConfig(cfg)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	s := &Server{
		config:         cfg,
		versionInfo:    params.VersionInfo,
		dbPool:         dbPool,
		redisClient:    rdb,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
		trackerService: tracker.NewService(tracker.NewServiceParams{
			Repo:             workoutsRepo,
			AchievementStore: achievements.NewRedisStore(rdb, achievements.DefaultUnlockedKey),
			Settings:         settings.NewRedisProvider(rdb, settings.DefaultKey, defaultSettings),
			Evaluator:        achievements.NewEvaluator(achievements.Definitions(), cfg.Location()),
			Metrics:          metricsManager,
			CacheSizeBytes:   cfg.SummaryCacheSizeBytes,
			SummaryCacheTTL:  cfg.SummaryCacheTTL(),
		}),
	}

	return s, nil
}

func defaultSettingsFromConfig(cfg *config.Config) (settings.Settings, error) {
	unitSystem, err := energy.ParseUnitSystem(cfg.DefaultUnitSystem)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("parse default unit system: %w", err)
	}
	mode, err := energy.ParseCalculationMode(cfg.DefaultCalculationMode)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("parse default calculation mode: %w", err)
	}
	return settings.Settings{
		UnitSystem:      unitSystem,
		CalculationMode: mode,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymenergy-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	rateLimit := middleware.RateLimit(
		reqRateLimiter,
		s.metricsManager,
		rateLimitRouterName,
		s.config.MutationsPerMinute,
	)
	adminAuth := middleware.NewAdminAuthMiddlewareHandler(s.config.Secrets.AdminSecretHash)
	if s.config.Secrets.AdminSecretHash == "" {
		log.Warnln("admin secret hash not set, admin routes are locked")
	}

	trackerHandler := tracker.NewHandler(s.trackerService)
	trackerHandler.SetupRoutes(r, rateLimit, adminAuth.AdminOnly())

	r.HandleFunc("/version", s.handleVersion).Methods("GET", "OPTIONS").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}).Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.LimitAndDrainBody(s.config.MaxBodyBytes))

	return r
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, map[string]string{"version": s.versionInfo}, http.StatusOK)
}

func (s *Server) metricsRouterSetup() *mux.Router {
	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	return metricsRouter
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	r := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      r,
		Addr:         ipAndPort,
		WriteTimeout: 20 * time.Second,
		ReadTimeout:  20 * time.Second,
		ConnState:    s.connStateMetrics,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: s.metricsRouterSetup(),
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
	}
	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics server")
		}
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		s.dbPool.Close()
	}

	sentry.Flush(5 * time.Second)

	log.Warnln("server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeOpenConnections.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeOpenConnections.Add(-1)
	default:
		// do nothing
	}
}
