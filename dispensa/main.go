package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	healthgo "github.com/hellofresh/health-go/v5"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/taldoflemis/rustic-roots/dispensa/docs"
	"github.com/taldoflemis/rustic-roots/pacchetto"
	"github.com/taldoflemis/rustic-roots/pacchetto/telemetry"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const shutdownTimeout = 10 * time.Second

// @title		Dispensa
// @version		1.0
// @description	Food catalog and order API of Rustic Roots.
// @host		localhost:5000
// @BasePath	/
func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()
	retcode := 0
	defer func() {
		os.Exit(retcode)
	}()

	slog.InfoContext(ctx, "Launching dispensa")

	slog.InfoContext(ctx, "Loading config")
	settings, err := LoadConfig()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", slog.Any("err", err))
		retcode = 1
		return
	}

	slog.InfoContext(ctx, "Setting up opentelemetry")
	otelShutdown, err := telemetry.SetupOTelSDK(ctx, settings.App, settings.OpenTelemetry)
	if err != nil {
		slog.Error("failed to setup telemetry", slog.Any("err", err))
		retcode = 1
		return
	}

	defer func() {
		err = errors.Join(err, otelShutdown(context.Background()))
		if err != nil {
			slog.ErrorContext(
				ctx,
				"failed to shutdown opentelemetry providers",
				slog.Any("err", err),
			)
			retcode = 1
		}
	}()

	slog.InfoContext(ctx, "Connecting to MongoDB")
	mongoClient, err := pacchetto.CreateMongoClient(ctx, settings.Mongo)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to MongoDB", slog.Any("err", err))
		retcode = 1
		return
	}

	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			slog.ErrorContext(ctx, "failed to disconnect from MongoDB", slog.Any("err", err))
		}
	}()

	db := mongoClient.Database(settings.Mongo.Database)
	foodStore := NewMongoFoodStore(db, settings.Mongo.Collections.Foods)
	orderStore := NewMongoOrderStore(db, settings.Mongo.Collections.Orders)

	slog.InfoContext(ctx, "Ensuring indexes")
	if err := errors.Join(foodStore.EnsureIndexes(ctx), orderStore.EnsureIndexes(ctx)); err != nil {
		slog.ErrorContext(ctx, "failed to ensure indexes", slog.Any("err", err))
		retcode = 1
		return
	}

	checks := []healthgo.Config{
		{
			Name:    "mongo",
			Timeout: 2 * time.Second,
			Check: func(ctx context.Context) error {
				return mongoClient.Ping(ctx, readpref.Primary())
			},
		},
	}

	var orderPubSubber OrderPubSubber = NewGoChannelOrderPubSubber()
	if settings.Nats.Enabled {
		slog.InfoContext(ctx, "Connecting to NATS server")
		nc, err := settings.Nats.GetNatsClient()
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to NATS server", slog.Any("err", err))
			retcode = 1
			return
		}
		defer drainNats(ctx, nc)

		orderPubSubber = NewNATSOrderPubSubber(nc, settings.Nats.Subject)
		checks = append(checks, healthgo.Config{
			Name: "nats",
			Check: func(ctx context.Context) error {
				if !nc.IsConnected() {
					return errors.New("NATS connection is not active")
				}
				return nil
			},
		})
	}

	slog.InfoContext(ctx, "Setting up health checker")
	health, err := healthgo.New(
		healthgo.WithComponent(healthgo.Component{
			Name:    settings.App.Name,
			Version: settings.App.Version,
		}),
		healthgo.WithChecks(checks...),
	)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create health checker", slog.Any("err", err))
		retcode = 1
		return
	}

	errChan := make(chan error, 1)
	server := echo.New()

	_, err = NewMainHandler(server, settings, foodStore, orderStore, orderPubSubber, health)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create handler", slog.Any("err", err))
		retcode = 1
		return
	}
	server.GET("/swagger/*", echoSwagger.WrapHandler)
	pprof.Register(server)

	go func() {
		slog.InfoContext(ctx, "listening for requests", slog.String("ip", settings.HTTP.IP), slog.String("port", settings.HTTP.Port))
		errChan <- server.Start(fmt.Sprintf("%s:%s", settings.HTTP.IP, settings.HTTP.Port))
	}()

	select {
	case err = <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "error when running server", slog.Any("err", err))
			retcode = 1
			return
		}
	case <-ctx.Done():
		// Wait for first Signal arrives
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to shutdown gracefully the server", slog.Any("err", err))
	}
}

func drainNats(ctx context.Context, nc *nats.Conn) {
	if err := nc.Drain(); err != nil {
		slog.ErrorContext(ctx, "failed to drain NATS connection", slog.Any("err", err))
	}
}
