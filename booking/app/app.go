package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/seat-booking/booking/config"
	"github.com/Astemirdum/seat-booking/booking/internal/handler"
	"github.com/Astemirdum/seat-booking/booking/internal/repository"
	"github.com/Astemirdum/seat-booking/booking/internal/server"
	"github.com/Astemirdum/seat-booking/booking/internal/service"
	"github.com/Astemirdum/seat-booking/booking/migrations"
	"github.com/Astemirdum/seat-booking/pkg/auth"
	"github.com/Astemirdum/seat-booking/pkg/kafka"
	"github.com/Astemirdum/seat-booking/pkg/lock"
	"github.com/Astemirdum/seat-booking/pkg/logger"
	"github.com/Astemirdum/seat-booking/pkg/postgres"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "booking")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	locker, err := newLocker(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal("locker", zap.Error(err))
	}
	defer closeWithLog(log, "locker", locker.Close)

	events, err := kafka.NewPublisher(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewPublisher", zap.Error(err))
	}
	defer closeWithLog(log, "publisher", events.Close)

	issuer := auth.NewIssuer(cfg.Auth)
	svc := service.NewService(repo, log,
		service.WithIssuer(issuer),
		service.WithLocker(locker),
		service.WithPublisher(events),
	)

	h := handler.New(svc, issuer, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
		return srv.Run()
	})
	g.Go(func() error {
		return svc.RunCompleter(gctx, cfg.CompleteInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("booking stopped", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}

func newLocker(ctx context.Context, cfg lock.RedisConfig, log *zap.Logger) (lock.Locker, error) {
	if cfg.Addr == "" {
		log.Info("using in-process seat locks")
		return lock.NewKeyed(), nil
	}
	return lock.NewRedisLocker(ctx, cfg, log)
}

func closeWithLog(log *zap.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Warn("close "+name, zap.Error(err))
	}
}
