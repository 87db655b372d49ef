// Package storage opens the document store selected by configuration.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookreviews/internal/library"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

const pingTimeout = 2 * time.Second

type Config struct {
	Driver          string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	PostgresDSN     string
}

// SchemaEnsurer is implemented by stores that can create their schema on demand.
type SchemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
}

// Open connects to the configured store and verifies it answers a ping.
// The returned func releases the connection.
func Open(ctx context.Context, cfg Config) (library.Repository, func(), error) {
	switch cfg.Driver {
	case DriverMongo:
		return openMongo(ctx, cfg)
	case DriverPostgres:
		return openPostgres(ctx, cfg)
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func openMongo(ctx context.Context, cfg Config) (library.Repository, func(), error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	closeFn := func() {
		dctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}

	repo := library.NewMongoRepo(client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection))
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := repo.Ping(pingCtx); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("ping mongo (%s): %w", RedactDSN(cfg.MongoURI), err)
	}
	log.Info().Str("database", cfg.MongoDatabase).Str("collection", cfg.MongoCollection).Msg("mongo connection OK")
	return repo, closeFn, nil
}

func openPostgres(ctx context.Context, cfg Config) (library.Repository, func(), error) {
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping database (%s): %w", RedactDSN(cfg.PostgresDSN), err)
	}
	log.Info().Msg("database connection OK")
	return library.NewPostgresRepo(pool), pool.Close, nil
}

// RedactDSN hides the credentials of a connection string.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.LastIndex(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
