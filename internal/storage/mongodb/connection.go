package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ai-website-generator/backend/config"
)

const appName = "ai-website-generator"

// Client owns the process-wide MongoDB connection pool and the configured database.
type Client struct {
	client *mongo.Client
	dbName string
}

// Connect creates the client. The driver dials lazily, so an unreachable server is
// only reported by the first operation (or Ping), not here.
func Connect(cfg config.MongoConfig) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName)
	if cfg.Timeout > 0 {
		opts.SetServerSelectionTimeout(cfg.Timeout)
		opts.SetConnectTimeout(cfg.Timeout)
	}

	c, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	return &Client{client: c, dbName: cfg.Name}, nil
}

// Database returns the configured database handle.
func (c *Client) Database() *mongo.Database {
	return c.client.Database(c.dbName)
}

func (c *Client) Collection(name string) *mongo.Collection {
	return c.Database().Collection(name)
}

// Ping round-trips to the primary.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("mongo client not connected")
	}
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the pool. It is a no-op on a nil or unconnected Client.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	return nil
}
