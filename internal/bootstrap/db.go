package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ai-website-generator/backend/config"
	"github.com/ai-website-generator/backend/internal/projects/repository"
	"github.com/ai-website-generator/backend/internal/storage/mongodb"
)

const indexTimeout = 5 * time.Second

// Store is the storage handle plus the repositories built on it.
type Store struct {
	Client   *mongodb.Client
	Projects *repository.ProjectRepository
}

// OpenStore connects to MongoDB and prepares the projects collection. The
// connection is lazy, so an index failure is logged and startup continues.
func OpenStore(ctx context.Context, cfg config.MongoConfig, log *zap.Logger) (*Store, error) {
	client, err := mongodb.Connect(cfg)
	if err != nil {
		return nil, err
	}

	projects := repository.NewProjectRepository(client.Collection(repository.CollectionName))

	ictx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()
	if err := projects.EnsureIndexes(ictx); err != nil {
		log.Warn("could not ensure project indexes", zap.Error(err))
	}

	log.Info("mongo client ready", zap.String("database", cfg.Name))
	return &Store{Client: client, Projects: projects}, nil
}

// Close releases the connection.
func (s *Store) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.Client.Close(ctx)
}
