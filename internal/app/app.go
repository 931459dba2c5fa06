package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/ExploreWithMe/internal/config"
	"github.com/stpnv0/ExploreWithMe/internal/handler"
	"github.com/stpnv0/ExploreWithMe/internal/middleware"
	"github.com/stpnv0/ExploreWithMe/internal/repository"
	"github.com/stpnv0/ExploreWithMe/internal/repository/memory"
	"github.com/stpnv0/ExploreWithMe/internal/router"
	"github.com/stpnv0/ExploreWithMe/internal/scheduler"
	"github.com/stpnv0/ExploreWithMe/internal/service"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports"
	"github.com/stpnv0/ExploreWithMe/internal/stats"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

type repos struct {
	requests ports.RequestRepo
	events   ports.EventRepo
	users    ports.UserRepo
	hits     ports.HitRepo
	tx       ports.Transactor
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ExploreWithMe",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	r, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	app.initServices(r)

	return app, nil
}

func (a *App) initStorage() (repos, error) {
	if a.cfg.Storage.IsMemory() {
		a.log.Warn("using in-memory storage, data is lost on restart")
		store := memory.New()
		return repos{
			requests: store.Requests(),
			events:   store.Events(),
			users:    store.Users(),
			hits:     store.Hits(),
			tx:       store,
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return repos{}, fmt.Errorf("migrations: %w", err)
	}

	if err := a.initDB(); err != nil {
		return repos{}, fmt.Errorf("init db: %w", err)
	}

	return repos{
		requests: repository.NewRequestRepo(a.db),
		events:   repository.NewEventRepo(a.db),
		users:    repository.NewUserRepo(a.db),
		hits:     repository.NewHitRepo(a.db),
		tx:       repository.NewTxManager(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices(r repos) {
	statsService := service.NewStatsService(
		stats.NewBuffer(a.cfg.Stats.BufferSize),
		r.hits,
		a.cfg.Stats.App,
		a.log,
	)
	userService := service.NewUserService(r.users)
	eventService := service.NewEventService(
		r.events, r.requests, r.users, r.tx,
		statsService, statsService,
		a.cfg.Stats.App, a.log,
	)
	requestService := service.NewRequestService(r.requests, r.events, r.users, r.tx, a.log)

	a.scheduler = scheduler.New(
		statsService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(requestService, eventService, userService, statsService)
	engine := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      engine,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.scheduler.Start(gctx)
		return nil
	})

	g.Go(func() error {
		a.log.LogAttrs(gctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
		return a.shutdownServer()
	})

	if err := g.Wait(); err != nil {
		return err
	}

	return a.closeDB()
}

func (a *App) shutdownServer() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	return nil
}

func (a *App) closeDB() error {
	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
