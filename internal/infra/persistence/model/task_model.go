package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel mirrors the 'tasks' table. Nested checklist and activity entries are stored as JSON.
type TaskModel struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ListID      uuid.UUID           `gorm:"type:uuid;not null;index"`
	Title       string              `gorm:"type:varchar(255);not null;index:idx_tasks_title"`
	Description string              `gorm:"type:text"`
	Attachments []string            `gorm:"type:text;serializer:json"`
	Checklist   []ChecklistItemJSON `gorm:"type:text;serializer:json"`
	Reminder    *time.Time
	Cover       string         `gorm:"type:varchar(255)"`
	Activity    []ActivityJSON `gorm:"type:text;serializer:json"`
	Completed   bool           `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}

type ChecklistItemJSON struct {
	Title    string     `json:"title"`
	Due      *time.Time `json:"due,omitempty"`
	Reminder *time.Time `json:"reminder,omitempty"`
	Steps    []struct {
		Step      string `json:"step"`
		Completed bool   `json:"completed"`
	} `json:"steps,omitempty"`
}

type ActivityJSON struct {
	Action string    `json:"action"`
	Detail string    `json:"detail,omitempty"`
	Date   time.Time `json:"date"`
}
