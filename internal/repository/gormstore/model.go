package gormstore

import (
	"time"

	"task-cli/internal/repository"
)

// taskModel is the GORM schema for the tasks table. Timestamps are set by the
// caller, so GORM's automatic time tracking is switched off.
type taskModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Description string     `gorm:"type:varchar(500);not null"`
	Status      string     `gorm:"type:varchar(16);not null;index;check:chk_tasks_status,status IN ('todo','in-progress','done')"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
}

func (taskModel) TableName() string {
	return "tasks"
}

func fromRecord(task *repository.Task) *taskModel {
	return &taskModel{
		ID:          task.ID,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func (m *taskModel) toRecord() *repository.Task {
	return &repository.Task{
		ID:          m.ID,
		Description: m.Description,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
