package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kiryu-dev/wall-go/internal/config"
	"github.com/kiryu-dev/wall-go/internal/domain"
	"github.com/kiryu-dev/wall-go/internal/transport/ws"
	"github.com/kiryu-dev/wall-go/internal/usecase/game"
	"github.com/kiryu-dev/wall-go/internal/usecase/hub"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfgPath := flag.String("config", "./config.yml", "path to config")
	flag.Parse()
	cfg, err := config.New(*cfgPath)
	if err != nil {
		panic(err)
	}
	logger, err := newLogger(cfg.Log.Development)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	var (
		hub = hub.New(func() domain.EngineUseCase {
			return game.New(logger)
		}, cfg.Sessions.IdleTimeout, cfg.Sessions.SweepPeriod, logger)
		server = ws.New(cfg.Server.Addr, hub, logger)
	)
	errGroup, ctx := errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			return errors.Errorf("captured signal: %v", s)
		case <-ctx.Done():
			return nil
		}
	})
	errGroup.Go(func() error {
		hub.Sweep(ctx)
		return nil
	})
	errGroup.Go(func() error {
		if err := server.ListenAndServe(); err != nil {
			return err
		}
		return nil
	})
	errGroup.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.WithMessage(server.Shutdown(shutdownCtx), "shutdown http server")
	})
	if err := errGroup.Wait(); err != nil {
		logger.Info("gracefully shutting down the server: " + err.Error())
	}
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
