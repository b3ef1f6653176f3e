package app

import (
	"context"
	"errors"
	"net/http"

	"lucky_slots/internal/config"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run поднимает HTTP-сервер и фоновые задачи и ждёт отмены ctx
func (s *App) Run(ctx context.Context) error {
	envErr := config.Load(".env")
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	logger := s.ServiceProvider.Logger()
	if envErr != nil {
		logger.Info(".env not loaded, using process environment", zap.Error(envErr))
	}

	srv := &http.Server{
		Addr:    s.ServiceProvider.HTTPCfg().Address(),
		Handler: s.ServiceProvider.Router(ctx),
	}

	purge, err := newPurgeJob(
		s.ServiceProvider.CronCfg().SessionPurgeSpec(),
		s.ServiceProvider.AuthService(ctx),
		logger.Named("cron"),
	)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		purge.Start()
		<-gCtx.Done()
		<-purge.Stop().Done()
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.ServiceProvider.HTTPCfg().ShutdownTimeout())
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}
