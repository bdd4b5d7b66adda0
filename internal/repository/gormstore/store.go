// Package gormstore keeps tasks in a PostgreSQL or MySQL server through GORM.
package gormstore

import (
	"context"
	stderrors "errors"
	"net/url"
	"time"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-cli/internal/errors"
	"task-cli/internal/logging"
	"task-cli/internal/repository"
)

// Dialect names accepted by Open
const (
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
)

// Store implements repository.Repository on a SQL server
type Store struct {
	db *gorm.DB
}

var _ repository.Repository = (*Store)(nil)

// debugWriter routes GORM's SQL trace into the debug log
type debugWriter struct{}

func (debugWriter) Printf(format string, args ...interface{}) {
	logging.Debugf(format, args...)
}

// NewLogger returns the GORM logger used by every store. SQL statements are
// traced only when debug output is enabled.
func NewLogger() logger.Interface {
	level := logger.Silent
	if logging.DebugEnabled() {
		level = logger.Info
	}
	return logger.New(debugWriter{}, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Open connects to the server named by uri, verifies it answers and migrates
// the tasks table.
func Open(ctx context.Context, dialect string, uri string) (*Store, error) {
	var dialector gorm.Dialector
	switch dialect {
	case DialectPostgres:
		dialector = postgres.Open(uri)
	case DialectMySQL:
		dsn, err := mysqlDSN(uri)
		if err != nil {
			return nil, errors.NewInvalidInputError("database.uri", uri, err.Error())
		}
		dialector = gormmysql.Open(dsn)
	default:
		return nil, errors.NewInvalidInputError("database.dialect", dialect, "unsupported SQL dialect")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 NewLogger(),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, errors.NewConnectivityError(redact(uri), err)
	}

	store := NewWithDB(db)
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}

	logging.Debug("opened sql task store", "dialect", dialect)
	return store, nil
}

// NewWithDB wraps an already configured GORM handle
func NewWithDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the tasks table
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&taskModel{}); err != nil {
		return translateError("migrate tasks table", err)
	}
	return nil
}

// Close releases the underlying connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateTask inserts a task and assigns its ID
func (s *Store) CreateTask(ctx context.Context, task *repository.Task) error {
	if err := repository.ValidateRecord(task); err != nil {
		return err
	}

	model := fromRecord(task)
	model.ID = 0
	if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError("create task", err)
	}

	task.ID = model.ID
	return nil
}

// GetTask retrieves a task by ID
func (s *Store) GetTask(ctx context.Context, id int64) (*repository.Task, error) {
	var model taskModel
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.TaskNotFound(id)
	}
	if err != nil {
		return nil, translateError("get task", err)
	}
	return model.toRecord(), nil
}

// ListTasks retrieves tasks in id order, optionally filtered by status
func (s *Store) ListTasks(ctx context.Context, opts repository.ListOptions) ([]*repository.Task, error) {
	query := s.db.WithContext(ctx).Model(&taskModel{})
	if opts.Status != nil {
		query = query.Where("status = ?", *opts.Status)
	}

	var models []taskModel
	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, translateError("list tasks", err)
	}

	tasks := make([]*repository.Task, 0, len(models))
	for i := range models {
		tasks = append(tasks, models[i].toRecord())
	}
	return tasks, nil
}

// UpdateTask writes description, status and updated_at of an existing task
func (s *Store) UpdateTask(ctx context.Context, task *repository.Task) error {
	if err := repository.ValidateRecord(task); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Model(&taskModel{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
		"description": task.Description,
		"status":      task.Status,
		"updated_at":  task.UpdatedAt,
	})
	if result.Error != nil {
		return translateError("update task", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.TaskNotFound(task.ID)
	}
	return nil
}

// DeleteTask removes a task by ID
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&taskModel{})
	if result.Error != nil {
		return translateError("delete task", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.TaskNotFound(id)
	}
	return nil
}

// redact hides the password of a connection URI before it is shown to the user
func redact(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "sql server"
	}
	return u.Redacted()
}
