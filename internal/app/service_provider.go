package app

import (
	"context"
	"net/http"
	healthAPI "slot_backend/internal/api/health"
	spinAPI "slot_backend/internal/api/spin"
	"slot_backend/internal/api/static"
	"slot_backend/internal/client/cache"
	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/metrics"
	appMiddleware "slot_backend/internal/middleware"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/spin_stats_repo"
	"slot_backend/internal/service"
	"slot_backend/internal/service/spin"
	"slot_backend/pkg/logger"
	"slot_backend/pkg/rng"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const spinConfigPath = "config.yaml"

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	log    *zap.Logger

	// Cache (опционально, в пути спина не используется)
	cacheCfg    config.CacheConfig
	cacheClient *cache.Client

	// Spin bits
	spinCfg       config.SpinConfig
	rngCfg        config.RNGConfig
	rngSource     rng.Source
	spinStatsRepo repository.SpinStatsRepository
	spinMetrics   *metrics.Spin
	spinServ      service.SpinService
	spinHand      *spinAPI.Handler

	healthHand *healthAPI.Handler

	// Router and HTTP config
	staticCfg config.StaticConfig
	httpCfg   config.HTTPConfig
	router    chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		cfg := sp.LogCfg()
		sp.log = logger.New(&logger.Config{
			Level: cfg.Level(),
			App:   cfg.App(),
			Dir:   cfg.Dir(),
			File:  cfg.File(),
		})
		// Пакеты без своего логгера (pkg/resp) пишут через zap.L()
		zap.ReplaceGlobals(sp.log)
	}
	return sp.log
}

func (sp *ServiceProvider) CacheCfg() config.CacheConfig {
	if sp.cacheCfg == nil {
		sp.cacheCfg = env.NewCacheConfig()
	}
	return sp.cacheCfg
}

// CacheClient Получить или создать клиента кэша. nil, если REDIS_URL не задан
// или строка подключения некорректна.
func (sp *ServiceProvider) CacheClient() *cache.Client {
	if sp.cacheClient == nil && sp.CacheCfg().Enabled() {
		c, err := cache.New(sp.CacheCfg().URL(), sp.Logger().Named("cache"))
		if err != nil {
			sp.Logger().Error("failed to create cache client", zap.Error(err))
			return nil
		}
		sp.cacheClient = c
	}
	return sp.cacheClient
}

func (sp *ServiceProvider) SpinCfg() config.SpinConfig {
	if sp.spinCfg == nil {
		cfg, err := env.NewSpinConfigFromYAML(spinConfigPath)
		if err != nil {
			panic("failed to get spin config: " + err.Error())
		}
		sp.spinCfg = cfg
	}
	return sp.spinCfg
}

func (sp *ServiceProvider) RNGCfg() config.RNGConfig {
	if sp.rngCfg == nil {
		cfg, err := env.NewRNGConfig()
		if err != nil {
			panic("failed to get rng config: " + err.Error())
		}
		sp.rngCfg = cfg
	}
	return sp.rngCfg
}

func (sp *ServiceProvider) RNGSource() rng.Source {
	if sp.rngSource == nil {
		if seed, ok := sp.RNGCfg().Seed(); ok {
			sp.Logger().Warn("using seeded random source", zap.Uint64("seed", seed))
			sp.rngSource = rng.NewSeeded(seed)
		} else {
			sp.rngSource = rng.New()
		}
	}
	return sp.rngSource
}

func (sp *ServiceProvider) SpinStatsRepository() repository.SpinStatsRepository {
	if sp.spinStatsRepo == nil {
		sp.spinStatsRepo = spin_stats_repo.NewSpinStatsRepository(sp.SpinCfg().StatsWindow())
	}
	return sp.spinStatsRepo
}

func (sp *ServiceProvider) SpinMetrics() *metrics.Spin {
	if sp.spinMetrics == nil {
		sp.spinMetrics = metrics.NewSpin()
	}
	return sp.spinMetrics
}

func (sp *ServiceProvider) SpinService() service.SpinService {
	if sp.spinServ == nil {
		sp.spinServ = spin.NewSpinService(
			sp.SpinCfg(),
			sp.RNGSource(),
			sp.SpinStatsRepository(),
			sp.SpinMetrics(),
			sp.Logger().Named("spin"),
		)
	}
	return sp.spinServ
}

func (sp *ServiceProvider) SpinHandler() *spinAPI.Handler {
	if sp.spinHand == nil {
		sp.spinHand = spinAPI.NewHandler(spinAPI.HandlerDeps{
			Serv: sp.SpinService(),
			Log:  sp.Logger().Named("api"),
		})
	}
	return sp.spinHand
}

func (sp *ServiceProvider) HealthHandler() *healthAPI.Handler {
	if sp.healthHand == nil {
		// Интерфейс с nil указателем внутри не nil, поэтому проверяем явно
		if c := sp.CacheClient(); c != nil {
			sp.healthHand = healthAPI.NewHandler(c)
		} else {
			sp.healthHand = healthAPI.NewHandler(nil)
		}
	}
	return sp.healthHand
}

func (sp *ServiceProvider) StaticCfg() config.StaticConfig {
	if sp.staticCfg == nil {
		sp.staticCfg = env.NewStaticConfig()
	}
	return sp.staticCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(appMiddleware.Logger(sp.Logger().Named("http")))
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", sp.HealthHandler().Health)
		r.Handle("/metrics", sp.SpinMetrics().Handler())

		// Spin endpoints
		spinHandler := sp.SpinHandler()
		r.Route("/api", func(rr chi.Router) {
			rr.Post("/spin", spinHandler.Spin)
			rr.Get("/spin", spinHandler.Spin)
			rr.Get("/spin/stats", spinHandler.Stats)
			rr.NotFound(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "not found", http.StatusNotFound)
			})
		})
		r.Post("/spin", spinHandler.Spin)

		// Фронтенд и фоллбек на index.html
		front := static.Handler(sp.StaticCfg().Dir())
		r.Get("/*", front.ServeHTTP)
		r.Head("/*", front.ServeHTTP)

		sp.router = r
	}

	return sp.router
}

// Close Освобождает ресурсы, созданные провайдером
func (sp *ServiceProvider) Close() {
	if sp.cacheClient != nil {
		if err := sp.cacheClient.Close(); err != nil {
			sp.Logger().Error("failed to close cache client", zap.Error(err))
		}
	}
	if sp.log != nil {
		_ = sp.log.Sync()
	}
}
