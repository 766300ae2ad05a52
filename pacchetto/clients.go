package pacchetto

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/nats-io/nats.go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

func (n *NatsSettings) GetNatsClient() (*nats.Conn, error) {
	portStr := strconv.Itoa(n.Port)
	opts := []nats.Option{}
	if n.UseCredentials {
		opts = append(opts, nats.UserInfo(n.Username, n.Password))
	}
	return nats.Connect(n.Host+":"+portStr, opts...)
}

// CreateMongoClient connects to MongoDB and pings the primary before
// returning. Callers own the client and must Disconnect it.
func CreateMongoClient(ctx context.Context, cfg MongoSettings) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(cfg.ConnectTimeout()).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMonitor(otelmongo.NewMonitor())

	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create mongo client", slog.Any("err", err))
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		slog.ErrorContext(ctx, "failed to ping mongo", slog.Any("err", err))
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}
