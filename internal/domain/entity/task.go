package entity

import "time"

// ActivityAction is the kind of change recorded in a task's activity log.
type ActivityAction string

const (
	ActivityCreated ActivityAction = "CREATED"
	ActivityUpdated ActivityAction = "UPDATE"
	ActivityArchive ActivityAction = "ARCHIVE"
)

// Task is a single to-do item inside a List.
type Task struct {
	ID          string
	ListID      string
	Title       string
	Description string
	Attachments []string
	Checklist   []ChecklistItem
	Reminder    *time.Time
	Cover       string
	Activity    []Activity
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ChecklistItem struct {
	Title    string
	Due      *time.Time
	Reminder *time.Time
	Steps    []ChecklistStep
}

type ChecklistStep struct {
	Step      string
	Completed bool
}

type Activity struct {
	Action ActivityAction
	Detail string
	Date   time.Time
}
