package sqlite

import (
	"database/sql"
	"fmt"

	"task-cli/internal/repository"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row.
// Columns: id, description, status, created_at, updated_at
func ScanTask(scanner Scanner) (*repository.Task, error) {
	task := &repository.Task{}
	var createdAt string
	var updatedAt sql.NullString

	err := scanner.Scan(
		&task.ID,
		&task.Description,
		&task.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, fmt.Errorf("task %d has malformed created_at %q: %w", task.ID, createdAt, err)
	}

	if updatedAt.Valid {
		t, err := ParseTimeFromDB(updatedAt.String)
		if err != nil {
			return nil, fmt.Errorf("task %d has malformed updated_at %q: %w", task.ID, updatedAt.String, err)
		}
		task.UpdatedAt = &t
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*repository.Task, error) {
	tasks := []*repository.Task{}
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
