package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/bookshelf-service/bookshelf/config"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/events"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/handler"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/repository"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/server"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/service"
	"github.com/Astemirdum/bookshelf-service/pkg/kafka"
	"github.com/Astemirdum/bookshelf-service/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "bookshelf")
	defer log.Sync() //nolint:errcheck

	var seed []model.Book
	if cfg.Seed {
		seed = repository.SeedData(time.Now().UTC())
	}
	repo := repository.NewRepository(log, seed...)

	opts := make([]service.Option, 0, 1)
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewSyncProducer(cfg.Kafka)
		if err != nil {
			log.Error("kafka.NewSyncProducer", zap.Error(err))
			return err
		}
		publisher := events.NewPublisher(producer, kafka.BookTopic, log)
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error("publisher.Close", zap.Error(err))
			}
		}()
		opts = append(opts, service.WithPublisher(publisher))
	}
	svc := service.NewService(repo, log, opts...)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(ctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
