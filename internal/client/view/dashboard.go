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

// Dashboard is the list of the user's boards plus the new-board form.
type Dashboard struct {
	api API

	Boards []*model.Board
	Form   model.BoardInput
	Error  string
}

func NewDashboard(api API) *Dashboard {
	return &Dashboard{api: api, Form: newBoardForm()}
}

func newBoardForm() model.BoardInput {
	return model.BoardInput{Color: model.DefaultBoardColor}
}

func (d *Dashboard) Load(ctx context.Context) error {
	boards, err := d.api.Boards(ctx)
	if err != nil {
		d.Error = failure("Failed to load boards", err)
		return err
	}
	d.Boards = boards
	d.Error = ""
	return nil
}

// Create submits the form. On success the board is prepended and the form reset.
func (d *Dashboard) Create(ctx context.Context) error {
	if strings.TrimSpace(d.Form.Title) == "" {
		d.Error = "Board title is required"
		return errors.New(d.Error)
	}

	board, err := d.api.CreateBoard(ctx, d.Form)
	if err != nil {
		d.Error = failure("Failed to create board", err)
		d.refresh(ctx)
		return err
	}

	d.Boards = slices.Insert(d.Boards, 0, board)
	d.Form = newBoardForm()
	d.Error = ""
	return nil
}

func (d *Dashboard) Delete(ctx context.Context, boardID string) error {
	err := d.api.DeleteBoard(ctx, boardID)
	if err != nil {
		d.Error = failure("Failed to delete board", err)
		d.refresh(ctx)
		return err
	}

	d.Boards = slices.DeleteFunc(d.Boards, func(b *model.Board) bool { return b.ID == boardID })
	d.Error = ""
	return nil
}

// refresh re-reads the list after a failed write, keeping the write's error.
func (d *Dashboard) refresh(ctx context.Context) {
	boards, err := d.api.Boards(ctx)
	if err == nil {
		d.Boards = boards
	}
}

func (d *Dashboard) Render(w io.Writer) error {
	if d.Error != "" {
		fmt.Fprintln(w, "error:", d.Error)
	}
	if len(d.Boards) == 0 {
		_, err := fmt.Fprintln(w, "No boards yet. Create your first board!")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCOLOR\tDESCRIPTION")
	for _, b := range d.Boards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Color, deref(b.Description))
	}
	return tw.Flush()
}
