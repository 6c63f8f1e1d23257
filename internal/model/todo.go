package model

import (
	"time"
)

const (
	TodoStatusTodo       = "todo"
	TodoStatusInProgress = "in_progress"
	TodoStatusCompleted  = "completed"
)

const (
	TodoPriorityLow    = "low"
	TodoPriorityMedium = "medium"
	TodoPriorityHigh   = "high"
)

var (
	TodoStatuses   = []string{TodoStatusTodo, TodoStatusInProgress, TodoStatusCompleted}
	TodoPriorities = []string{TodoPriorityLow, TodoPriorityMedium, TodoPriorityHigh}
)

type Todo struct {
	ID          string     `db:"id" json:"id"`
	BoardID     string     `db:"board_id" json:"boardId"`
	UserID      string     `db:"user_id" json:"userId"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	Status      string     `db:"status" json:"status"`
	Priority    string     `db:"priority" json:"priority"`
	DueDate     *time.Time `db:"due_date" json:"dueDate"`
	Completed   bool       `db:"completed" json:"completed"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}

type TodoInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	// DueDate is "2006-01-02" or RFC 3339.
	DueDate string `json:"dueDate,omitempty"`
}

// TodoPatch mixes two update styles: Title, Status and Priority apply
// only when non-empty, while Description, DueDate and Completed apply
// whenever the key is present, explicit null included.
type TodoPatch struct {
	Title       string           `json:"title,omitempty"`
	Status      string           `json:"status,omitempty"`
	Priority    string           `json:"priority,omitempty"`
	Description Optional[string] `json:"description,omitzero"`
	DueDate     Optional[string] `json:"dueDate,omitzero"`
	Completed   Optional[bool]   `json:"completed,omitzero"`
}

// TodoFilter holds exact-match list predicates. Empty fields match all.
type TodoFilter struct {
	Status   string
	Priority string
}
