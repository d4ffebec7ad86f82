package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ESChernov/steamrent/internal/config"
	"github.com/ESChernov/steamrent/internal/guard"
	"github.com/ESChernov/steamrent/internal/handlers"
	"github.com/ESChernov/steamrent/internal/notify"
	"github.com/ESChernov/steamrent/internal/pg"
	"github.com/ESChernov/steamrent/internal/repo"
	"github.com/ESChernov/steamrent/internal/rotate"
	"github.com/ESChernov/steamrent/internal/service"
	"github.com/ESChernov/steamrent/internal/service/rentalservice"
	"github.com/ESChernov/steamrent/internal/workers"
	"github.com/ESChernov/steamrent/pkg/auth"
	"github.com/ESChernov/steamrent/pkg/clients"
	"github.com/ESChernov/steamrent/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	expiry   *workers.ExpiryWorker
	dispatch *workers.DispatchWorker

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	httpClient := clients.NewHTTPClient()
	codes := guard.New(guard.NewTimeSync(httpClient))
	rotator := rotate.New(cfg.RotationAddress, httpClient)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	notifier, err := buildNotifier(cfg)
	if err != nil {
		zap.L().Error("telegram notifier failed: ", zap.Error(err))
		return fmt.Errorf("can't build notifier: %w", err)
	}

	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, codes, notifier, rotator, rentalservice.Options{
		BonusHours:      cfg.BonusHours,
		RotationTimeout: cfg.RotationTimeout,
	}, cfg.OperatorLogin, cfg.OperatorPassHash, jwtService)
	a.api = handlers.New(a.srv, jwtService)
	a.expiry = workers.NewExpiryWorker(a.srv.Rental, cfg.ExpiryInterval)
	a.dispatch = workers.NewDispatchWorker(a.repo.AccountRepo, codes, notifier, cfg.DispatchInterval, cfg.TaskTTL)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startWorkers(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func buildNotifier(cfg *config.Config) (rentalservice.Notifier, error) {
	if cfg.TelegramToken == "" {
		zap.L().Warn("no telegram token configured, notifications go to the log only")
		return notify.LogNotifier{}, nil
	}
	return notify.NewTelegram(cfg.TelegramToken, cfg.OperatorChatID)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startWorkers(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.expiry.Start(ctx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.dispatch.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
