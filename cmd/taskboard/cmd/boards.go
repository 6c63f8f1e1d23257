package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/taskboard/internal/client/view"
	"github.com/templui/taskboard/internal/model"
)

func BoardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "Manage boards",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your boards, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			d := view.NewDashboard(c)
			err = d.Load(cmd.Context())
			if err != nil {
				return err
			}
			return d.Render(cmd.OutOrStdout())
		},
	})

	var form model.BoardInput
	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			d := view.NewDashboard(c)
			d.Form.Title = args[0]
			d.Form.Description = form.Description
			if form.Color != "" {
				d.Form.Color = form.Color
			}
			err = d.Create(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d.Boards[0].ID)
			return err
		},
	}
	create.Flags().StringVar(&form.Description, "description", "", "Board description")
	create.Flags().StringVar(&form.Color, "color", "", "Hex color (default "+model.DefaultBoardColor+")")
	cmd.AddCommand(create)

	var update model.BoardInput
	updateCmd := &cobra.Command{
		Use:   "update <board-id>",
		Short: "Change title, description or color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			board, err := c.UpdateBoard(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", board.ID, board.Title, board.Color)
			return err
		},
	}
	updateCmd.Flags().StringVar(&update.Title, "title", "", "New title")
	updateCmd.Flags().StringVar(&update.Description, "description", "", "New description")
	updateCmd.Flags().StringVar(&update.Color, "color", "", "New hex color")
	cmd.AddCommand(updateCmd)

	var filter string
	show := &cobra.Command{
		Use:   "show <board-id>",
		Short: "Show a board and its todos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			v := view.NewBoard(c, args[0])
			err = v.SetFilter(filter)
			if err != nil {
				return err
			}
			err = v.Load(cmd.Context())
			if err != nil {
				return err
			}
			return v.Render(cmd.OutOrStdout())
		},
	}
	show.Flags().StringVar(&filter, "filter", view.FilterAll, "all, todo, in_progress or completed")
	cmd.AddCommand(show)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board and all of its todos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			d := view.NewDashboard(c)
			return d.Delete(cmd.Context(), args[0])
		},
	})

	return cmd
}
