package model

import (
	"time"
)

const DefaultBoardColor = "#3498db"

type Board struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	Color       string    `db:"color" json:"color"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// BoardDetail is a board with its todos attached, newest first.
type BoardDetail struct {
	*Board
	Todos []*Todo `json:"todos"`
}

// BoardInput is used for create and partial update. On update, empty
// strings mean "leave unchanged".
type BoardInput struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}
