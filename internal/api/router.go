package api

import (
	"production-plan/internal/api/handlers"
	"production-plan/internal/api/middleware"
	"production-plan/internal/config"
	"production-plan/internal/logger"
	"production-plan/internal/metrics"
	"production-plan/internal/planner"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries the collaborators of the router. Zero values are replaced
// with working defaults.
type Options struct {
	Logger   *logger.ZerologLogger
	Registry *prometheus.Registry
}

// NewRouter wires middleware and routes.
func NewRouter(cfg *config.Config, opts Options) (*gin.Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewZerologLogger("api")
	}

	if cfg.Server.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins...))
	router.Use(middleware.Logger(log.With("module", "http")))
	router.Use(middleware.ErrorHandler(log))
	router.NoRoute(middleware.NotFound)

	var rec metrics.Recorder = metrics.NopRecorder{}
	if cfg.Metrics.Enabled {
		var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
		var prom *metrics.PromRecorder
		var err error
		if opts.Registry != nil {
			gatherer = opts.Registry
			prom, err = metrics.NewPromRecorderWithRegistry(opts.Registry)
		} else {
			prom, err = metrics.NewPromRecorder()
		}
		if err != nil {
			return nil, err
		}
		rec = prom
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	planHandler := handlers.NewProductionPlanHandler(planner.New(log.With("module", "planner")), rec, log)

	router.GET("/health", handlers.Health)
	router.GET("/version", handlers.Version)

	router.POST("/productionplan", planHandler.ProductionPlan)
	router.POST("/productionplan/meritorder", planHandler.MeritOrder)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/productionplan", planHandler.ProductionPlan)
		v1.POST("/productionplan/meritorder", planHandler.MeritOrder)
	}

	return router, nil
}
