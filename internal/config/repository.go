package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"task-cli/internal/errors"
	"task-cli/internal/logging"
	"task-cli/internal/repository"
	"task-cli/internal/repository/gormstore"
	"task-cli/internal/repository/mongodb"
	"task-cli/internal/repository/sqlite"
)

// StoreKind names a task store backend
type StoreKind string

const (
	StoreSQLite   StoreKind = "sqlite"
	StorePostgres StoreKind = "postgres"
	StoreMySQL    StoreKind = "mysql"
	StoreMongoDB  StoreKind = "mongodb"
)

// StoreTarget is a parsed store URI
type StoreTarget struct {
	Kind StoreKind
	// Target is the SQLite file path, or the connection URI handed to the driver
	Target string
}

// ParseStoreURI selects the backend for a store URI by its scheme
func ParseStoreURI(uri string) (StoreTarget, error) {
	uri = strings.TrimSpace(uri)
	switch {
	case uri == ":memory:", uri == "sqlite://:memory:":
		return StoreTarget{Kind: StoreSQLite, Target: ":memory:"}, nil
	case strings.HasPrefix(uri, "sqlite://"):
		path := strings.TrimPrefix(uri, "sqlite://")
		if path == "" {
			return StoreTarget{}, &ConfigError{Field: "database.uri", Message: "sqlite URI has no file path"}
		}
		return StoreTarget{Kind: StoreSQLite, Target: expandHome(path)}, nil
	case strings.HasPrefix(uri, "file:"):
		return StoreTarget{Kind: StoreSQLite, Target: expandHome(strings.TrimPrefix(uri, "file:"))}, nil
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return StoreTarget{Kind: StorePostgres, Target: uri}, nil
	case strings.HasPrefix(uri, "mysql://"):
		return StoreTarget{Kind: StoreMySQL, Target: uri}, nil
	case strings.HasPrefix(uri, "mongodb://"), strings.HasPrefix(uri, "mongodb+srv://"):
		return StoreTarget{Kind: StoreMongoDB, Target: uri}, nil
	default:
		return StoreTarget{}, &ConfigError{
			Field:   "database.uri",
			Message: fmt.Sprintf("unsupported store URI %q (use sqlite://, postgres://, mysql:// or mongodb://)", uri),
		}
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// CreateRepository opens the task store named by the configuration
func CreateRepository(ctx context.Context, config *Config) (repository.Repository, error) {
	if config.Environment == Testing {
		return CreateTestRepository(ctx)
	}

	target, err := ParseStoreURI(config.Database.URI)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, config.GetQueryTimeout())
	defer cancel()

	logging.Debug("opening task store", "kind", string(target.Kind))

	var repo repository.Repository
	switch target.Kind {
	case StoreSQLite:
		if target.Target != ":memory:" {
			dir := filepath.Dir(target.Target)
			if err := os.MkdirAll(dir, os.FileMode(config.Database.DirPermissions)); err != nil {
				return nil, errors.NewDatabaseError("create database directory", err).WithContext("path", dir)
			}
		}
		repo, err = sqlite.New(ctx, target.Target)
	case StorePostgres:
		repo, err = gormstore.Open(ctx, gormstore.DialectPostgres, target.Target)
	case StoreMySQL:
		repo, err = gormstore.Open(ctx, gormstore.DialectMySQL, target.Target)
	case StoreMongoDB:
		repo, err = mongodb.Open(ctx, target.Target)
	default:
		return nil, &ConfigError{Field: "database.uri", Message: "unsupported store kind " + string(target.Kind)}
	}
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository(ctx context.Context) (repository.Repository, error) {
	repo, err := sqlite.New(ctx, ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}
