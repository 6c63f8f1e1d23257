package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/templui/taskboard/internal/model"
)

// FilterAll shows every todo regardless of status.
const FilterAll = "all"

// Board is one board with its todos, a status filter and the new-todo form.
type Board struct {
	api API

	BoardID string
	Board   *model.Board
	Todos   []*model.Todo
	Filter  string
	Form    model.TodoInput
	Error   string

	// Redirect is set when the board could not be loaded; callers go
	// back to the dashboard instead of showing this view.
	Redirect bool
}

func NewBoard(api API, boardID string) *Board {
	return &Board{
		api:     api,
		BoardID: boardID,
		Filter:  FilterAll,
		Form:    newTodoForm(),
	}
}

func newTodoForm() model.TodoInput {
	return model.TodoInput{Priority: model.TodoPriorityMedium}
}

func (v *Board) Load(ctx context.Context) error {
	detail, err := v.api.Board(ctx, v.BoardID)
	if err != nil {
		v.Error = failure("Failed to load board", err)
		v.Redirect = true
		return err
	}
	v.Board = detail.Board
	v.Todos = detail.Todos
	if v.Todos == nil {
		v.Todos = []*model.Todo{}
	}
	v.Error = ""
	v.Redirect = false
	return nil
}

// SetFilter accepts "all" or a todo status.
func (v *Board) SetFilter(filter string) error {
	if filter != FilterAll && !slices.Contains(model.TodoStatuses, filter) {
		return fmt.Errorf("unknown filter %q", filter)
	}
	v.Filter = filter
	return nil
}

// Visible returns the todos matching the current filter.
func (v *Board) Visible() []*model.Todo {
	if v.Filter == FilterAll || v.Filter == "" {
		return v.Todos
	}
	var out []*model.Todo
	for _, t := range v.Todos {
		if t.Status == v.Filter {
			out = append(out, t)
		}
	}
	return out
}

func (v *Board) Create(ctx context.Context) error {
	if strings.TrimSpace(v.Form.Title) == "" {
		v.Error = "Todo title is required"
		return errors.New(v.Error)
	}

	todo, err := v.api.CreateTodo(ctx, v.BoardID, v.Form)
	if err != nil {
		v.Error = failure("Failed to create todo", err)
		v.refresh(ctx)
		return err
	}

	v.Todos = slices.Insert(v.Todos, 0, todo)
	v.Form = newTodoForm()
	v.Error = ""
	return nil
}

// Update replaces the todo in place with the server's copy.
func (v *Board) Update(ctx context.Context, todoID string, patch model.TodoPatch) error {
	todo, err := v.api.UpdateTodo(ctx, v.BoardID, todoID, patch)
	if err != nil {
		v.Error = failure("Failed to update todo", err)
		v.refresh(ctx)
		return err
	}

	i := slices.IndexFunc(v.Todos, func(t *model.Todo) bool { return t.ID == todoID })
	if i >= 0 {
		v.Todos[i] = todo
	}
	v.Error = ""
	return nil
}

func (v *Board) Delete(ctx context.Context, todoID string) error {
	err := v.api.DeleteTodo(ctx, v.BoardID, todoID)
	if err != nil {
		v.Error = failure("Failed to delete todo", err)
		v.refresh(ctx)
		return err
	}

	v.Todos = slices.DeleteFunc(v.Todos, func(t *model.Todo) bool { return t.ID == todoID })
	v.Error = ""
	return nil
}

func (v *Board) refresh(ctx context.Context) {
	detail, err := v.api.Board(ctx, v.BoardID)
	if err == nil {
		v.Board = detail.Board
		v.Todos = detail.Todos
	}
}

func (v *Board) Render(w io.Writer) error {
	if v.Board != nil {
		fmt.Fprintln(w, v.Board.Title)
		if v.Board.Description != nil && *v.Board.Description != "" {
			fmt.Fprintln(w, *v.Board.Description)
		}
		fmt.Fprintln(w)
	}
	if v.Error != "" {
		fmt.Fprintln(w, "error:", v.Error)
	}

	todos := v.Visible()
	if len(todos) == 0 {
		_, err := fmt.Fprintln(w, "No todos in this view")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tPRIORITY\tDUE\tDONE")
	for _, t := range todos {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		done := ""
		if t.Completed {
			done = "x"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Title, Label(t.Status), Label(t.Priority), due, done)
	}
	return tw.Flush()
}
