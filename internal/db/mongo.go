package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"dd-backend/internal/config/configs"
)

// PingTimeout bounds the connectivity check performed by NewMongoClient.
const PingTimeout = 5 * time.Second

// NewMongoClient connects to the database described by cfg and verifies the
// connection by pinging the primary. If pinging fails, the client is
// disconnected and an error is returned. The caller must disconnect the
// returned client when it is no longer needed.
func NewMongoClient(ctx context.Context, cfg configs.Mongo) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, ClientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err = client.Ping(ctxPing, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// ClientOptions returns driver options for cfg. Only the URL is applied;
// pool sizes, retries and TLS stay at the driver defaults.
func ClientOptions(cfg configs.Mongo) *options.ClientOptions {
	return options.Client().ApplyURI(cfg.URL())
}
