package infra

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jrandrade/datastore-gateway/config"
	"github.com/jrandrade/datastore-gateway/entity"
)

// MongoClient holds the shared document-store handle. Repositories obtain
// collections through Collection, which always resolves against the current
// client so a reconnect performed by EnsureConnected is picked up
// transparently.
type MongoClient struct {
	mu       sync.RWMutex
	client   *mongo.Client
	uri      string
	database string
}

// InitMongoClient connects to the document store. A failed initial ping is
// logged by the caller and is non-fatal: the process still starts and the
// health probe can reconnect later.
func InitMongoClient(cfg *config.EnvConfig) (*MongoClient, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
	}

	return &MongoClient{
		client:   client,
		uri:      cfg.Mongo.URI,
		database: cfg.Mongo.Database,
	}, nil
}

func (m *MongoClient) current() *mongo.Client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.client
}

// Ping checks connectivity against the primary.
func (m *MongoClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.current().Ping(ctx, readpref.Primary())
}

// EnsureConnected verifies the handle is ready and, when it is not, makes
// exactly one reconnect attempt before giving up.
func (m *MongoClient) EnsureConnected(ctx context.Context) error {
	if err := m.Ping(ctx); err == nil {
		return nil
	}

	replacement, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return entity.NewStoreError("mongodb reconnect", err)
	}
	if err := replacement.Ping(ctx, readpref.Primary()); err != nil {
		_ = replacement.Disconnect(ctx)
		return entity.NewStoreError("mongodb reconnect", err)
	}

	m.mu.Lock()
	previous := m.client
	m.client = replacement
	m.mu.Unlock()
	_ = previous.Disconnect(ctx)

	return nil
}

// Collection returns a handle bound to the named collection of the
// configured database.
func (m *MongoClient) Collection(name string) *MongoCollection {
	return &MongoCollection{client: m, name: name}
}

// Disconnect tears the client down at shutdown.
func (m *MongoClient) Disconnect(ctx context.Context) error {
	return m.current().Disconnect(ctx)
}

// MongoCollection delegates every operation to the current client so that a
// reconnect swap is transparent to repositories.
type MongoCollection struct {
	client *MongoClient
	name   string
}

func (c *MongoCollection) coll() *mongo.Collection {
	return c.client.current().Database(c.client.database).Collection(c.name)
}

func (c *MongoCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	return c.coll().InsertOne(ctx, document, opts...)
}

func (c *MongoCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	return c.coll().Find(ctx, filter, opts...)
}

func (c *MongoCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	return c.coll().FindOne(ctx, filter, opts...)
}

func (c *MongoCollection) FindOneAndUpdate(ctx context.Context, filter, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult {
	return c.coll().FindOneAndUpdate(ctx, filter, update, opts...)
}

func (c *MongoCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	return c.coll().DeleteOne(ctx, filter, opts...)
}
