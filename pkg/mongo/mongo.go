package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Config struct {
	URI         string `envconfig:"MONGO_URI"`
	Database    string `envconfig:"MONGO_DATABASE" default:"somascents"`
	DialTimeout int    `envconfig:"MONGO_DIAL_TIMEOUT" default:"10"`
}

// New connects to MongoDB and returns the configured database handle along
// with the client so callers can disconnect it on shutdown.
func (c *Config) New() (*mongo.Client, *mongo.Database, error) {
	if c.URI == "" {
		return nil, nil, errors.New("mongo: MONGO_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.DialTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(c.Database), nil
}
