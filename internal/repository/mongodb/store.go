// Package mongodb keeps tasks in a MongoDB collection with an integer id sequence.
package mongodb

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"task-cli/internal/errors"
	"task-cli/internal/logging"
	"task-cli/internal/repository"
)

const (
	taskCollection    = "task"
	counterCollection = "mongoengine.counters"
	taskSequenceID    = "task.id"

	disconnectTimeout = 5 * time.Second
)

// Store implements repository.Repository on MongoDB
type Store struct {
	client   *mongo.Client
	tasks    *mongo.Collection
	counters *mongo.Collection
	endpoint string
}

var _ repository.Repository = (*Store)(nil)

// Open connects to the server named by uri and checks that it answers
func Open(ctx context.Context, uri string) (*Store, error) {
	endpoint := redact(uri)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, translateConnectError(endpoint, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		disconnect(client)
		return nil, translateConnectError(endpoint, err)
	}

	db := client.Database(databaseName(uri))
	logging.Debug("opened mongodb task store", "endpoint", endpoint, "database", db.Name())

	return &Store{
		client:   client,
		tasks:    db.Collection(taskCollection),
		counters: db.Collection(counterCollection),
		endpoint: endpoint,
	}, nil
}

// Close disconnects from the server
func (s *Store) Close() error {
	return disconnect(s.client)
}

func disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// nextID atomically advances the task id sequence and returns the new value
func (s *Store) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter counterDocument
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": taskSequenceID},
		bson.M{"$inc": bson.M{"next": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, translateError("allocate task id", s.endpoint, err)
	}
	return counter.Next, nil
}

// CreateTask allocates the next id and inserts the task
func (s *Store) CreateTask(ctx context.Context, task *repository.Task) error {
	if err := repository.ValidateRecord(task); err != nil {
		return err
	}

	id, err := s.nextID(ctx)
	if err != nil {
		return err
	}

	doc := toDocument(task)
	doc.ID = id
	if _, err := s.tasks.InsertOne(ctx, doc); err != nil {
		return translateError("create task", s.endpoint, err)
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (s *Store) GetTask(ctx context.Context, id int64) (*repository.Task, error) {
	var doc taskDocument
	err := s.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.TaskNotFound(id)
	}
	if err != nil {
		return nil, translateError("get task", s.endpoint, err)
	}
	return doc.toRecord(), nil
}

// ListTasks retrieves tasks in id order, optionally filtered by status
func (s *Store) ListTasks(ctx context.Context, opts repository.ListOptions) ([]*repository.Task, error) {
	filter := bson.M{}
	if opts.Status != nil {
		filter["status"] = *opts.Status
	}

	cursor, err := s.tasks.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, translateError("list tasks", s.endpoint, err)
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translateError("list tasks", s.endpoint, err)
	}

	tasks := make([]*repository.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, doc.toRecord())
	}
	return tasks, nil
}

// UpdateTask writes description, status and updatedAt of an existing task
func (s *Store) UpdateTask(ctx context.Context, task *repository.Task) error {
	if err := repository.ValidateRecord(task); err != nil {
		return err
	}

	doc := toDocument(task)
	result, err := s.tasks.UpdateOne(ctx,
		bson.M{"_id": task.ID},
		bson.M{"$set": bson.M{
			"description": doc.Description,
			"status":      doc.Status,
			"updatedAt":   doc.UpdatedAt,
		}},
	)
	if err != nil {
		return translateError("update task", s.endpoint, err)
	}
	if result.MatchedCount == 0 {
		return repository.TaskNotFound(task.ID)
	}
	return nil
}

// DeleteTask removes a task by ID
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	result, err := s.tasks.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateError("delete task", s.endpoint, err)
	}
	if result.DeletedCount == 0 {
		return repository.TaskNotFound(id)
	}
	return nil
}

// translateConnectError reports any failure while establishing the session as connectivity
func translateConnectError(endpoint string, err error) error {
	return errors.NewConnectivityError(endpoint, err)
}
