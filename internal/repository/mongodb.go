// Package repository provides data access for MongoDB and an in-memory checkout store.
package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	CheckoutStatesCollection = "checkout_states"
	LogsCollection           = "logs"
)

// Option tunes the MongoDB client.
type Option func(*options.ClientOptions)

// WithPoolSize bounds the connection pool.
func WithPoolSize(minSize, maxSize uint64) Option {
	return func(o *options.ClientOptions) {
		o.SetMinPoolSize(minSize).SetMaxPoolSize(maxSize)
	}
}

// WithTimeouts sets the connect and server selection timeouts.
func WithTimeouts(connect, selection time.Duration) Option {
	return func(o *options.ClientOptions) {
		o.SetConnectTimeout(connect).SetServerSelectionTimeout(selection)
	}
}

// WithCompression negotiates wire compression with the server.
func WithCompression() Option {
	return func(o *options.ClientOptions) {
		o.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}
}

const defaultConnectTimeout = 10 * time.Second

// MongoDB holds the client and the collections the service uses.
type MongoDB struct {
	Client         *mongo.Client
	Database       *mongo.Database
	CheckoutStates *mongo.Collection
	Logs           *mongo.Collection
}

// NewMongoDB connects, pings and ensures indexes. Without options the pool
// holds 5 to 50 connections and connecting gives up after 10s.
func NewMongoDB(uri, databaseName string, opts ...Option) (*MongoDB, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetMinPoolSize(5).
		SetMaxPoolSize(50).
		SetMaxConnIdleTime(10 * time.Minute).
		SetConnectTimeout(defaultConnectTimeout).
		SetServerSelectionTimeout(5 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true)
	for _, opt := range opts {
		opt(clientOptions)
	}

	connectTimeout := defaultConnectTimeout
	if clientOptions.ConnectTimeout != nil {
		connectTimeout = *clientOptions.ConnectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:         client,
		Database:       db,
		CheckoutStates: db.Collection(CheckoutStatesCollection),
		Logs:           db.Collection(LogsCollection),
	}
	if err := m.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create indexes: %w", err)
	}
	return m, nil
}

func (m *MongoDB) createIndexes(ctx context.Context) error {
	_, err := m.Logs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
		{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "action_type", Value: 1}, {Key: "outcome", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	return err
}

// SetLogsTTL replaces the TTL index on logs.timestamp.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	return replaceTTLIndex(ctx, m.Logs, "timestamp", ttl)
}

// SetCheckoutStateTTL replaces the TTL index on checkout_states.updated_at.
// Abandoned checkout state expires once a session can no longer be resumed.
func (m *MongoDB) SetCheckoutStateTTL(ctx context.Context, ttl time.Duration) error {
	return replaceTTLIndex(ctx, m.CheckoutStates, "updated_at", ttl)
}

func replaceTTLIndex(ctx context.Context, coll *mongo.Collection, field string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", ttl)
	}
	_, _ = coll.Indexes().DropOne(ctx, field+"_1")

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	})
	if err != nil && strings.Contains(err.Error(), "IndexOptionsConflict") {
		return nil
	}
	return err
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the primary, giving up after 2s.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, readpref.Primary())
}
