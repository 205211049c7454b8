package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sainaif/animalsys/internal/logging"
)

// Store is the database surface the Bootstrapper needs. *MongoStore
// implements it.
type Store interface {
	CollectionNames(ctx context.Context) ([]string, error)
	CreateCollection(ctx context.Context, name string) error
	CreateIndexes(ctx context.Context, collection string, models []mongo.IndexModel) ([]string, error)
	CreateUser(ctx context.Context, user, password string) error
}

// Report summarizes what a run changed.
type Report struct {
	CreatedCollections []string
	Indexes            []string
	UserCreated        bool
}

type Bootstrapper struct {
	store       Store
	logger      logging.Logger
	collections []string
	indexes     []IndexSpec
}

func New(store Store, logger logging.Logger) *Bootstrapper {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Bootstrapper{
		store:       store,
		logger:      logger,
		collections: Collections,
		indexes:     Indexes,
	}
}

// Run creates missing collections, then indexes, then the application user
// when user is not empty.
func (b *Bootstrapper) Run(ctx context.Context, user, password string) (*Report, error) {
	rep := &Report{}

	existing, err := b.store.CollectionNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	for _, name := range b.collections {
		if slices.Contains(existing, name) {
			b.logger.Debug(ctx, "collection exists", "collection", name)
			continue
		}
		if err := b.store.CreateCollection(ctx, name); err != nil {
			return rep, fmt.Errorf("create collection %s: %w", name, err)
		}
		b.logger.Info(ctx, "collection created", "collection", name)
		rep.CreatedCollections = append(rep.CreatedCollections, name)
	}

	order, models := indexesByCollection(b.indexes)
	for _, coll := range order {
		names, err := b.store.CreateIndexes(ctx, coll, models[coll])
		if err != nil {
			return rep, fmt.Errorf("create indexes on %s: %w", coll, err)
		}
		b.logger.Info(ctx, "indexes ensured", "collection", coll, "indexes", names)
		for _, n := range names {
			rep.Indexes = append(rep.Indexes, coll+"."+n)
		}
	}

	if user == "" {
		return rep, nil
	}

	switch err := b.store.CreateUser(ctx, user, password); {
	case errors.Is(err, ErrUserExists):
		b.logger.Info(ctx, "application user already exists", "user", user)
	case err != nil:
		return rep, fmt.Errorf("create user %s: %w", user, err)
	default:
		b.logger.Info(ctx, "application user created", "user", user)
		rep.UserCreated = true
	}
	return rep, nil
}
