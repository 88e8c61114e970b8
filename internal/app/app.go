package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"slot_backend/internal/config"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const cacheReadyTimeout = 30 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	envErr := config.Load(".env")
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	log := s.ServiceProvider.Logger()
	if envErr != nil {
		log.Info("no .env file loaded", zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpCfg := s.ServiceProvider.HTTPCfg()
	srv := &http.Server{
		Addr:              httpCfg.Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Кэш не обязателен: ошибка подключения только логируется
	if c := s.ServiceProvider.CacheClient(); c != nil {
		g.Go(func() error {
			waitCtx, cancel := context.WithTimeout(gctx, cacheReadyTimeout)
			defer cancel()
			if err := c.WaitReady(waitCtx); err != nil {
				log.Warn("cache is not available", zap.Error(err))
			}
			return nil
		})
	}

	g.Go(func() error {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
