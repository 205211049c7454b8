package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB error codes handled by the bootstrap.
const (
	codeNamespaceExists = 48
	codeUserExists      = 51003
)

var ErrUserExists = errors.New("database user already exists")

// Connect opens a client and pings the primary.
func Connect(ctx context.Context, cfg *Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(cfg.Timeout)

	cli, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return cli, nil
}

// MongoStore runs the bootstrap operations against one database.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) DatabaseName() string {
	return s.db.Name()
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

// CreateCollection creates name. A collection that appeared concurrently is
// not an error.
func (s *MongoStore) CreateCollection(ctx context.Context, name string) error {
	err := s.db.CreateCollection(ctx, name)
	if hasCode(err, codeNamespaceExists) {
		return nil
	}
	return err
}

func (s *MongoStore) CreateIndexes(ctx context.Context, collection string, models []mongo.IndexModel) ([]string, error) {
	return s.db.Collection(collection).Indexes().CreateMany(ctx, models)
}

// CreateUser creates a user with readWrite on the store's database. It
// returns ErrUserExists if the user is already there.
func (s *MongoStore) CreateUser(ctx context.Context, user, password string) error {
	cmd := bson.D{
		{Key: "createUser", Value: user},
		{Key: "pwd", Value: password},
		{Key: "roles", Value: bson.A{
			bson.D{{Key: "role", Value: "readWrite"}, {Key: "db", Value: s.db.Name()}},
		}},
	}
	err := s.db.RunCommand(ctx, cmd).Err()
	if hasCode(err, codeUserExists) {
		return ErrUserExists
	}
	return err
}

func hasCode(err error, code int32) bool {
	var ce mongo.CommandError
	return errors.As(err, &ce) && ce.Code == code
}
