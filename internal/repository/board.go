package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/taskboard/internal/model"
)

var (
	ErrBoardNotFound = errors.New("board not found")
)

type BoardRepository interface {
	Create(ctx context.Context, board *model.Board) error
	// ByID loads a board regardless of owner; callers compare UserID.
	ByID(ctx context.Context, id string) (*model.Board, error)
	Boards(ctx context.Context, userID string) ([]*model.Board, error)
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id string) error
}

type boardRepository struct {
	db *sqlx.DB
}

func NewBoardRepository(db *sqlx.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) Create(ctx context.Context, board *model.Board) error {
	query := `INSERT INTO boards (id, user_id, title, description, color, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		board.ID,
		board.UserID,
		board.Title,
		board.Description,
		board.Color,
		board.CreatedAt,
		board.UpdatedAt,
	)

	return err
}

func (r *boardRepository) ByID(ctx context.Context, id string) (*model.Board, error) {
	board := &model.Board{}
	query := `SELECT * FROM boards WHERE id = $1`

	err := r.db.GetContext(ctx, board, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}

	return board, nil
}

func (r *boardRepository) Boards(ctx context.Context, userID string) ([]*model.Board, error) {
	boards := []*model.Board{}
	query := `SELECT * FROM boards WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &boards, query, userID)
	if err != nil {
		return nil, err
	}

	return boards, nil
}

// Update writes the mutable fields. user_id is never rewritten.
func (r *boardRepository) Update(ctx context.Context, board *model.Board) error {
	query := `UPDATE boards
	          SET title = $1, description = $2, color = $3, updated_at = $4
	          WHERE id = $5`

	board.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		board.Title,
		board.Description,
		board.Color,
		board.UpdatedAt,
		board.ID,
	)
	if err != nil {
		return err
	}

	return expectOneRow(result, ErrBoardNotFound)
}

// Delete removes the board; its todos go with it through ON DELETE CASCADE.
func (r *boardRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM boards WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return expectOneRow(result, ErrBoardNotFound)
}
