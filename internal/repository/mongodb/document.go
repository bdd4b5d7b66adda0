package mongodb

import (
	"time"

	"task-cli/internal/repository"
)

// taskDocument is the stored shape of a task. Field names match documents
// written by earlier versions of the tool, so existing collections stay readable.
type taskDocument struct {
	ID          int64      `bson:"_id"`
	Description string     `bson:"description"`
	Status      string     `bson:"status"`
	CreatedAt   time.Time  `bson:"createdAt"`
	UpdatedAt   *time.Time `bson:"updatedAt"`
}

// counterDocument holds the next value of an id sequence
type counterDocument struct {
	ID   string `bson:"_id"`
	Next int64  `bson:"next"`
}

func toDocument(task *repository.Task) taskDocument {
	doc := taskDocument{
		ID:          task.ID,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt.UTC(),
	}
	if task.UpdatedAt != nil {
		updated := task.UpdatedAt.UTC()
		doc.UpdatedAt = &updated
	}
	return doc
}

func (d taskDocument) toRecord() *repository.Task {
	status := d.Status
	if status == "" {
		status = repository.StatusTodo
	}
	return &repository.Task{
		ID:          d.ID,
		Description: d.Description,
		Status:      status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
