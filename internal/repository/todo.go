package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/taskboard/internal/model"
)

var (
	ErrTodoNotFound = errors.New("todo not found")
)

type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	ByID(ctx context.Context, id string) (*model.Todo, error)
	Todos(ctx context.Context, boardID string, filter model.TodoFilter) ([]*model.Todo, error)
	Update(ctx context.Context, todo *model.Todo) error
	Delete(ctx context.Context, id string) error
}

type todoRepository struct {
	db *sqlx.DB
}

func NewTodoRepository(db *sqlx.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *model.Todo) error {
	query := `INSERT INTO todos (id, board_id, user_id, title, description, status, priority, due_date, completed, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		todo.ID,
		todo.BoardID,
		todo.UserID,
		todo.Title,
		todo.Description,
		todo.Status,
		todo.Priority,
		todo.DueDate,
		todo.Completed,
		todo.CreatedAt,
		todo.UpdatedAt,
	)

	return err
}

func (r *todoRepository) ByID(ctx context.Context, id string) (*model.Todo, error) {
	todo := &model.Todo{}
	query := `SELECT * FROM todos WHERE id = $1`

	err := r.db.GetContext(ctx, todo, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}

	return todo, nil
}

// Todos lists a board's todos newest first, narrowed by exact-match filters.
func (r *todoRepository) Todos(ctx context.Context, boardID string, filter model.TodoFilter) ([]*model.Todo, error) {
	todos := []*model.Todo{}

	where := []string{"board_id = $1"}
	args := []any{boardID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		where = append(where, fmt.Sprintf("priority = $%d", len(args)))
	}

	query := `SELECT * FROM todos WHERE ` + strings.Join(where, " AND ") + ` ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &todos, query, args...)
	if err != nil {
		return nil, err
	}

	return todos, nil
}

// Update writes the mutable fields. board_id and user_id are never rewritten.
func (r *todoRepository) Update(ctx context.Context, todo *model.Todo) error {
	query := `UPDATE todos
	          SET title = $1, description = $2, status = $3, priority = $4, due_date = $5, completed = $6, updated_at = $7
	          WHERE id = $8`

	todo.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		todo.Title,
		todo.Description,
		todo.Status,
		todo.Priority,
		todo.DueDate,
		todo.Completed,
		todo.UpdatedAt,
		todo.ID,
	)
	if err != nil {
		return err
	}

	return expectOneRow(result, ErrTodoNotFound)
}

func (r *todoRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM todos WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return expectOneRow(result, ErrTodoNotFound)
}
