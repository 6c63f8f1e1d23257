package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/templui/taskboard/internal/cache"
	"github.com/templui/taskboard/internal/model"
	"github.com/templui/taskboard/internal/repository"
	"github.com/templui/taskboard/internal/validation"
	"golang.org/x/sync/singleflight"
)

type TodoService struct {
	repo      repository.TodoRepository
	boardRepo repository.BoardRepository
	cache     TodoListCache
	sf        singleflight.Group
}

// NewTodoService creates a TodoService. If cache is nil, caching is disabled.
func NewTodoService(
	repo repository.TodoRepository,
	boardRepo repository.BoardRepository,
	cache TodoListCache,
) *TodoService {
	return &TodoService{
		repo:      repo,
		boardRepo: boardRepo,
		cache:     cache,
	}
}

func (s *TodoService) Create(ctx context.Context, userID, boardID string, in model.TodoInput) (*model.Todo, error) {
	board, err := s.ownedBoard(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateTodoTitle(in.Title)
	if err != nil {
		return nil, validationError(err)
	}

	priority := in.Priority
	if priority == "" {
		priority = model.TodoPriorityMedium
	}
	err = validation.ValidatePriority(priority)
	if err != nil {
		return nil, validationError(err)
	}

	var dueDate *time.Time
	if in.DueDate != "" {
		d, err := validation.ParseDueDate(in.DueDate)
		if err != nil {
			return nil, validationError(err)
		}
		dueDate = &d
	}

	now := time.Now().UTC()
	todo := &model.Todo{
		ID:          uuid.New().String(),
		BoardID:     board.ID,
		UserID:      userID,
		Title:       in.Title,
		Description: optionalString(in.Description),
		Status:      model.TodoStatusTodo,
		Priority:    priority,
		DueDate:     dueDate,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Create(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	invalidate(ctx, s.cache, board.ID)
	return todo, nil
}

// List returns the board's todos newest first. With a cache configured,
// concurrent misses for the same board and filter share one store query.
func (s *TodoService) List(ctx context.Context, userID, boardID string, filter model.TodoFilter) ([]*model.Todo, error) {
	board, err := s.ownedBoard(ctx, userID, boardID)
	if err != nil {
		return nil, err
	}

	if filter.Status != "" {
		err = validation.ValidateStatus(filter.Status)
		if err != nil {
			return nil, validationError(err)
		}
	}
	if filter.Priority != "" {
		err = validation.ValidatePriority(filter.Priority)
		if err != nil {
			return nil, validationError(err)
		}
	}

	if s.cache == nil {
		return s.load(ctx, board.ID, filter)
	}

	gen, err := s.cache.Generation(ctx, board.ID)
	if err != nil {
		slog.Warn("todo cache generation read failed", "error", err, "board_id", board.ID)
		return s.load(ctx, board.ID, filter)
	}

	v, err, _ := s.sf.Do(cache.ListKey(board.ID, gen, filter), func() (any, error) {
		// shared by every caller that joins, so one disconnect must not fail the rest
		ctx := context.WithoutCancel(ctx)

		list, err := s.cache.GetList(ctx, board.ID, gen, filter)
		if err != nil {
			slog.Warn("todo cache read failed", "error", err, "board_id", board.ID)
		}
		if list != nil {
			return list, nil
		}

		list, err = s.load(ctx, board.ID, filter)
		if err != nil {
			return nil, err
		}

		err = s.cache.SetList(ctx, board.ID, gen, filter, list)
		if err != nil {
			slog.Warn("todo cache write failed", "error", err, "board_id", board.ID)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*model.Todo), nil
}

func (s *TodoService) Get(ctx context.Context, userID, boardID, todoID string) (*model.Todo, error) {
	return s.ownedTodo(ctx, userID, boardID, todoID)
}

// Update applies a TodoPatch. Title, Status and Priority change only when
// non-empty; Description, DueDate and Completed change whenever present.
func (s *TodoService) Update(ctx context.Context, userID, boardID, todoID string, patch model.TodoPatch) (*model.Todo, error) {
	todo, err := s.ownedTodo(ctx, userID, boardID, todoID)
	if err != nil {
		return nil, err
	}

	if patch.Title != "" {
		err = validation.ValidateTodoTitle(patch.Title)
		if err != nil {
			return nil, validationError(err)
		}
		todo.Title = patch.Title
	}
	if patch.Description.Set {
		todo.Description = patch.Description.Value
	}
	if patch.Status != "" {
		err = validation.ValidateStatus(patch.Status)
		if err != nil {
			return nil, validationError(err)
		}
		todo.Status = patch.Status
	}
	if patch.Priority != "" {
		err = validation.ValidatePriority(patch.Priority)
		if err != nil {
			return nil, validationError(err)
		}
		todo.Priority = patch.Priority
	}
	if patch.DueDate.Set {
		todo.DueDate = nil
		if patch.DueDate.Value != nil && *patch.DueDate.Value != "" {
			d, err := validation.ParseDueDate(*patch.DueDate.Value)
			if err != nil {
				return nil, validationError(err)
			}
			todo.DueDate = &d
		}
	}
	if patch.Completed.Set {
		if patch.Completed.Value == nil {
			return nil, newError(ErrValidation, "Completed must be true or false")
		}
		todo.Completed = *patch.Completed.Value
	}

	err = s.repo.Update(ctx, todo)
	if errors.Is(err, repository.ErrTodoNotFound) {
		return nil, newError(ErrNotFound, "Todo not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	invalidate(ctx, s.cache, todo.BoardID)
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, userID, boardID, todoID string) error {
	todo, err := s.ownedTodo(ctx, userID, boardID, todoID)
	if err != nil {
		return err
	}

	err = s.repo.Delete(ctx, todo.ID)
	if errors.Is(err, repository.ErrTodoNotFound) {
		return newError(ErrNotFound, "Todo not found")
	}
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	invalidate(ctx, s.cache, todo.BoardID)
	return nil
}

func (s *TodoService) load(ctx context.Context, boardID string, filter model.TodoFilter) ([]*model.Todo, error) {
	todos, err := s.repo.Todos(ctx, boardID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// ownedBoard folds a missing board and someone else's board into one Forbidden.
func (s *TodoService) ownedBoard(ctx context.Context, userID, boardID string) (*model.Board, error) {
	board, err := s.boardRepo.ByID(ctx, boardID)
	if err != nil && !errors.Is(err, repository.ErrBoardNotFound) {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	if board == nil || board.UserID != userID {
		return nil, newError(ErrForbidden, "Board not found or unauthorized")
	}
	return board, nil
}

// ownedTodo reports NotFound for a missing todo, a todo on another board
// and a todo owned by someone else alike.
func (s *TodoService) ownedTodo(ctx context.Context, userID, boardID, todoID string) (*model.Todo, error) {
	todo, err := s.repo.ByID(ctx, todoID)
	if err != nil && !errors.Is(err, repository.ErrTodoNotFound) {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}
	if todo == nil || todo.BoardID != boardID || todo.UserID != userID {
		return nil, newError(ErrNotFound, "Todo not found")
	}
	return todo, nil
}
