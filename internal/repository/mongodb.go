// Package repository stores the operational request and audit log in MongoDB.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	logsCollection  = "logs"
	logsTTLIndex    = "timestamp_ttl"
	defaultLogsDays = 7
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	EnableCompression      bool
}

// DefaultMongoConfig returns a small pool suited to a write-mostly log sink.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            20,
		MinPoolSize:            2,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB holds the client and the logs collection.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Logs     *mongo.Collection
}

// NewMongoDB connects with DefaultMongoConfig.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and ensures the query indexes exist.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:   client,
		Database: db,
		Logs:     db.Collection(logsCollection),
	}

	if err := m.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return m, nil
}

func (m *MongoDB) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
		{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "action_type", Value: 1}, {Key: "timestamp", Value: -1}}},
	}
	if _, err := m.Logs.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create log indexes: %w", err)
	}
	return nil
}

// SetLogsTTL (re)creates the TTL index that expires log entries after ttlDays.
// Non-positive values use a week.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	if ttlDays <= 0 {
		ttlDays = defaultLogsDays
	}

	// The index may not exist yet.
	_, _ = m.Logs.Indexes().DropOne(ctx, logsTTLIndex)

	ttlIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().
			SetName(logsTTLIndex).
			SetExpireAfterSeconds(int32(ttlDays * 24 * 60 * 60)),
	}
	if _, err := m.Logs.Indexes().CreateOne(ctx, ttlIndex); err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Name == "IndexOptionsConflict" {
			return nil
		}
		return fmt.Errorf("create logs ttl index: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// Check pings the server. It satisfies the readiness checker used by /readyz.
func (m *MongoDB) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
