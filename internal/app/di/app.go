package di

import (
	"context"

	companyadapters "equity_backend/internal/feature/companies/adapters"
	companyhandler "equity_backend/internal/feature/companies/transport/handler"
	companyusecase "equity_backend/internal/feature/companies/usecase"
	equityadapters "equity_backend/internal/feature/equities/adapters"
	equityhandler "equity_backend/internal/feature/equities/transport/handler"
	equityusecase "equity_backend/internal/feature/equities/usecase"
	maintenanceadapters "equity_backend/internal/feature/maintenance/adapters"
	maintenancehandler "equity_backend/internal/feature/maintenance/transport/handler"
	maintenanceusecase "equity_backend/internal/feature/maintenance/usecase"
	scoringhandler "equity_backend/internal/feature/scoring/transport/handler"
	scoringusecase "equity_backend/internal/feature/scoring/usecase"
	"equity_backend/internal/platform/cache"
	"equity_backend/internal/platform/config"
	platformhandler "equity_backend/internal/platform/http/handler"
	"equity_backend/internal/shared/ratelimiter"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App holds the wired usecases shared by the server and the ingest CLI.
type App struct {
	Symbols     *companyusecase.SymbolUsecase
	Charts      *equityusecase.ChartUsecase
	Ingest      *equityusecase.IngestUsecase
	Maintenance *maintenanceusecase.MaintenanceUsecase
	Scoring     *scoringusecase.ScoringUsecase
	ChartCache  *cache.CachingChartProvider

	db  *gorm.DB
	rdb *redis.Client
}

// NewApp wires repositories, external clients and usecases. rdb may be nil.
func NewApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	market := NewMarket(cfg.IEX)
	companies := companyadapters.NewCompanyRepository(db)
	equities := equityadapters.NewEquityRepository(db)

	chartCache := cache.NewCachingChartProvider(rdb, market,
		cache.UntilDailyRefresh(cfg.Refresh.CacheHour, cfg.CacheLocation()), "charts")

	charts := equityusecase.NewChartUsecase(chartCache, equities, companies)
	limiter := ratelimiter.NewRateLimiter(cfg.Refresh.RateLimit, cfg.Refresh.RateInterval)

	return &App{
		Symbols: companyusecase.NewSymbolUsecase(market, companies,
			NewSymbolBatchStore(rdb, db, cfg.Symbols.BatchTTL)),
		Charts:      charts,
		Ingest:      equityusecase.NewIngestUsecase(charts, companies, limiter),
		Maintenance: maintenanceusecase.NewMaintenanceUsecase(maintenanceadapters.NewTableRepository(db)),
		Scoring:     scoringusecase.NewScoringUsecase(NewScorer(cfg.AzureML)),
		ChartCache:  chartCache,
		db:          db,
		rdb:         rdb,
	}
}

// Handlers groups the HTTP handlers registered by the router.
type Handlers struct {
	Symbols   *companyhandler.SymbolHandler
	Charts    *equityhandler.ChartHandler
	Ingest    *equityhandler.IngestHandler
	Refresh   *maintenancehandler.RefreshHandler
	Scoring   *scoringhandler.ScoringHandler
	Readiness *platformhandler.ReadinessHandler
}

// Handlers creates the HTTP handlers for the wired usecases.
func (a *App) Handlers() Handlers {
	checks := map[string]platformhandler.Checker{
		"database": func(ctx context.Context) error {
			sqlDB, err := a.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if a.rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return a.rdb.Ping(ctx).Err()
		}
	}

	return Handlers{
		Symbols:   companyhandler.NewSymbolHandler(a.Symbols),
		Charts:    equityhandler.NewChartHandler(a.Charts),
		Ingest:    equityhandler.NewIngestHandler(a.Ingest),
		Refresh:   maintenancehandler.NewRefreshHandler(a.Maintenance),
		Scoring:   scoringhandler.NewScoringHandler(a.Scoring),
		Readiness: platformhandler.NewReadinessHandler(checks),
	}
}
