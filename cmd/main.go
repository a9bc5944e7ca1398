package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/stroika/internal/api"
	apievents "github.com/samandr77/stroika/internal/api/events"
	"github.com/samandr77/stroika/internal/events"
	"github.com/samandr77/stroika/internal/httpclients/storage"
	"github.com/samandr77/stroika/internal/repository"
	"github.com/samandr77/stroika/internal/service"
	"github.com/samandr77/stroika/pkg/broker"
	"github.com/samandr77/stroika/pkg/config"
	"github.com/samandr77/stroika/pkg/job"
	"github.com/samandr77/stroika/pkg/logger"
	"github.com/samandr77/stroika/pkg/postgres"
	"github.com/samandr77/stroika/pkg/security"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.LogLevel)
	panicOnErr("new logger", err)

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	pubKey, err := security.ParsePublicKeyFromFile(cfg.JWTPublicKeyPath)
	panicOnErr("parse jwt public key", err)

	storageClient := storage.NewClient(cfg.StorageServiceURL)

	producer := broker.NewProducer(slog.Default(), cfg.Kafka.Brokers)
	defer producer.Close()

	publisher := events.NewPublisher(producer, cfg.Kafka.TaskAssignedTopic, cfg.Kafka.MentionCreatedTopic)

	s := service.New(repo, storageClient, publisher, pubKey, cfg.TaskIdentifierPrefix)

	{
		job.NewService().
			RegisterJob("close ended assignments", cfg.JobAssignmentsInterval, s.CloseEndedAssignments).
			Start(ctx)
	}

	// Kafka consumers
	{
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.UserDeactivatedTopic)
		defer consumer.Close()

		eventHandler := apievents.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.UserDeactivatedTopic, eventHandler.OnUserDeactivated)
		consumer.Consume(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
