// Package database wraps the MongoDB connection behind an explicitly
// optional Store: a deployment without DATABASE_URL still boots, and every
// operation against the missing store reports ErrUnavailable instead of
// dereferencing a nil client.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant-app-api/pkg/config"
	"restaurant-app-api/pkg/logger"
	"restaurant-app-api/pkg/metrics"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUnavailable is returned for any operation attempted while the store is
// not connected. Callers decide whether that degrades to an empty result or
// surfaces as a server error.
var ErrUnavailable = errors.New("document store unavailable")

// Collection names used by the service.
const (
	CollectionUser       = "user"
	CollectionRestaurant = "restaurant"
	CollectionProduct    = "product"
)

// Store is the shared connection handle. A zero-value Store is valid and
// permanently unavailable.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Unavailable returns a Store with no backing connection.
func Unavailable() *Store {
	return &Store{}
}

// Connect attempts to reach the configured store endpoint. Connection
// failures are logged and yield an unavailable Store rather than an error:
// the HTTP surface must come up either way.
func Connect(cfg *config.Config) *Store {
	if cfg.Database.URL == "" {
		logger.GlobalLogger.Println("DATABASE_URL not set, running without a document store")
		return Unavailable()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Database.URL).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(100)

	start := time.Now()
	client, err := mongo.Connect(ctx, clientOptions)
	metrics.MongoOperationDuration.WithLabelValues("connect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("connect", "").Inc()
		logger.GlobalLogger.Errorf("failed to connect to MongoDB: %v", err)
		return Unavailable()
	}

	start = time.Now()
	err = client.Ping(ctx, nil)
	metrics.MongoOperationDuration.WithLabelValues("ping", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("ping", "").Inc()
		client.Disconnect(ctx)
		logger.GlobalLogger.Errorf("failed to ping MongoDB: %v", err)
		return Unavailable()
	}

	logger.GlobalLogger.Println("MongoDB connected successfully.")
	return &Store{client: client, db: client.Database(cfg.Database.DBName)}
}

// Available reports whether the store holds a live connection.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Collection returns the named collection, or ErrUnavailable when the store
// is not connected.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	return s.db.Collection(name), nil
}

// Name returns the database name, empty when unavailable.
func (s *Store) Name() string {
	if !s.Available() {
		return ""
	}
	return s.db.Name()
}

// Ping checks connectivity to the store.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrUnavailable
	}
	return s.client.Ping(ctx, nil)
}

// ListCollectionNames returns the collection names in the database.
func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	return s.db.ListCollectionNames(ctx, map[string]interface{}{})
}

// Close disconnects the underlying client if one exists.
func (s *Store) Close() {
	if !s.Available() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	start := time.Now()
	err := s.client.Disconnect(ctx)
	metrics.MongoOperationDuration.WithLabelValues("disconnect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("disconnect", "").Inc()
		logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
	} else {
		logger.GlobalLogger.Println("MongoDB connection closed")
	}
}

// String describes the connection state, for the diagnostic endpoint.
func (s *Store) String() string {
	if !s.Available() {
		return "Not Connected"
	}
	return fmt.Sprintf("Connected (%s)", s.db.Name())
}
