// Package database contains the logic for establishing the
// connection to MongoDB.
//
// It handles:
//   - building client options from config
//   - wiring the driver command monitor into the application logger
//   - pinging the deployment so startup fails fast when it is unreachable
//   - handing out the single collection the API works on
package database

import (
	"context"
	"fmt"

	"github.com/deppfellow/resource-api/internal/config"
	loggerPkg "github.com/deppfellow/resource-api/internal/logger"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Database wraps the MongoDB client and the database handle.
//
// Client is safe for concurrent use: the driver keeps its own connection
// pool, so one Database is built at startup and shared by every request.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database

	collection string
	log        *zerolog.Logger
}

// New connects to MongoDB using cfg.Database and pings the primary.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.Database.URI).
		SetAppName(config.ServiceName).
		SetConnectTimeout(cfg.Database.ConnectTimeoutDuration()).
		SetMonitor(loggerPkg.NewCommandMonitor(
			logger,
			cfg.Primary.IsLocal() || cfg.Logging.IsDebug(),
			cfg.Logging.SlowQueryThreshold,
		))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeoutDuration())
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("database", cfg.Database.Name).
		Msg("connected to the database")

	return &Database{
		Client:     client,
		DB:         client.Database(cfg.Database.Name),
		collection: cfg.Database.Collection,
		log:        logger,
	}, nil
}

// Resources returns the collection holding Resource documents.
func (db *Database) Resources() *mongo.Collection {
	return db.DB.Collection(db.collection)
}

// Ping checks that the primary is reachable.
func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// BuildInfo holds the fields of the buildInfo command the health check reports.
type BuildInfo struct {
	Version string `bson:"version"`
}

// ServerVersion runs buildInfo and returns the server version string.
func (db *Database) ServerVersion(ctx context.Context) (string, error) {
	var info BuildInfo
	if err := db.DB.RunCommand(ctx, bson.D{{Key: "buildInfo", Value: 1}}).Decode(&info); err != nil {
		return "", fmt.Errorf("failed to run buildInfo: %w", err)
	}
	return info.Version, nil
}

// Close disconnects the client, waiting for in-use connections until ctx ends.
func (db *Database) Close(ctx context.Context) error {
	db.log.Info().Msg("closing database connection")
	return db.Client.Disconnect(ctx)
}
