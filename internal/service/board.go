package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/templui/taskboard/internal/model"
	"github.com/templui/taskboard/internal/repository"
	"github.com/templui/taskboard/internal/validation"
)

// TodoListCache is the read-through cache used for todo lists.
// Lists are keyed by the board generation read before loading;
// InvalidateBoard advances the generation. GetList returns nil, nil on a miss.
type TodoListCache interface {
	Generation(ctx context.Context, boardID string) (int64, error)
	GetList(ctx context.Context, boardID string, gen int64, filter model.TodoFilter) ([]*model.Todo, error)
	SetList(ctx context.Context, boardID string, gen int64, filter model.TodoFilter, list []*model.Todo) error
	InvalidateBoard(ctx context.Context, boardID string) error
}

type BoardService struct {
	repo     repository.BoardRepository
	todoRepo repository.TodoRepository
	cache    TodoListCache
}

// NewBoardService creates a BoardService. If cache is nil, caching is disabled.
func NewBoardService(
	repo repository.BoardRepository,
	todoRepo repository.TodoRepository,
	cache TodoListCache,
) *BoardService {
	return &BoardService{
		repo:     repo,
		todoRepo: todoRepo,
		cache:    cache,
	}
}

func (s *BoardService) Create(ctx context.Context, userID string, in model.BoardInput) (*model.Board, error) {
	err := validation.ValidateBoardTitle(in.Title)
	if err != nil {
		return nil, validationError(err)
	}

	color := in.Color
	if color == "" {
		color = model.DefaultBoardColor
	}
	err = validation.ValidateColor(color)
	if err != nil {
		return nil, validationError(err)
	}

	now := time.Now().UTC()
	board := &model.Board{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       in.Title,
		Description: optionalString(in.Description),
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Create(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	slog.Info("board created", "board_id", board.ID, "user_id", userID)
	return board, nil
}

func (s *BoardService) List(ctx context.Context, userID string) ([]*model.Board, error) {
	boards, err := s.repo.Boards(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

func (s *BoardService) Get(ctx context.Context, userID, boardID string) (*model.BoardDetail, error) {
	board, err := s.owned(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}

	todos, err := s.todoRepo.Todos(ctx, board.ID, model.TodoFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load todos: %w", err)
	}

	return &model.BoardDetail{Board: board, Todos: todos}, nil
}

// Update applies only the non-empty fields of the input.
func (s *BoardService) Update(ctx context.Context, userID, boardID string, in model.BoardInput) (*model.Board, error) {
	board, err := s.owned(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		err = validation.ValidateBoardTitle(in.Title)
		if err != nil {
			return nil, validationError(err)
		}
		board.Title = in.Title
	}
	if in.Description != "" {
		board.Description = &in.Description
	}
	if in.Color != "" {
		err = validation.ValidateColor(in.Color)
		if err != nil {
			return nil, validationError(err)
		}
		board.Color = in.Color
	}

	err = s.repo.Update(ctx, board)
	if errors.Is(err, repository.ErrBoardNotFound) {
		return nil, newError(ErrNotFound, "Board not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	return board, nil
}

func (s *BoardService) Delete(ctx context.Context, userID, boardID string) error {
	board, err := s.owned(ctx, userID, boardID)
	if err != nil {
		return err
	}

	err = s.repo.Delete(ctx, board.ID)
	if errors.Is(err, repository.ErrBoardNotFound) {
		return newError(ErrNotFound, "Board not found")
	}
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	invalidate(ctx, s.cache, board.ID)
	slog.Info("board deleted", "board_id", board.ID, "user_id", userID)
	return nil
}

// owned loads a board and checks the caller owns it.
// A missing board is NotFound, someone else's board is Forbidden.
func (s *BoardService) owned(ctx context.Context, userID, boardID string) (*model.Board, error) {
	board, err := s.repo.ByID(ctx, boardID)
	if errors.Is(err, repository.ErrBoardNotFound) {
		return nil, newError(ErrNotFound, "Board not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	if board.UserID != userID {
		return nil, newError(ErrForbidden, "Unauthorized access to this board")
	}

	return board, nil
}

func invalidate(ctx context.Context, cache TodoListCache, boardID string) {
	if cache == nil {
		return
	}
	err := cache.InvalidateBoard(ctx, boardID)
	if err != nil {
		slog.Warn("failed to invalidate todo cache", "error", err, "board_id", boardID)
	}
}
