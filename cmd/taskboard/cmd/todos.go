package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/taskboard/internal/client/view"
	"github.com/templui/taskboard/internal/model"
)

func TodosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos",
		Short: "Manage todos on a board",
	}

	var filter model.TodoFilter
	list := &cobra.Command{
		Use:   "list <board-id>",
		Short: "List todos, optionally filtered on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			todos, err := c.Todos(cmd.Context(), args[0], filter)
			if err != nil {
				return err
			}
			v := view.NewBoard(c, args[0])
			v.Todos = todos
			return v.Render(cmd.OutOrStdout())
		},
	}
	list.Flags().StringVar(&filter.Status, "status", "", "todo, in_progress or completed")
	list.Flags().StringVar(&filter.Priority, "priority", "", "low, medium or high")
	cmd.AddCommand(list)

	var form model.TodoInput
	create := &cobra.Command{
		Use:   "create <board-id> <title>",
		Short: "Add a todo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			v := view.NewBoard(c, args[0])
			v.Form.Title = args[1]
			v.Form.Description = form.Description
			v.Form.DueDate = form.DueDate
			if form.Priority != "" {
				v.Form.Priority = form.Priority
			}
			err = v.Create(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v.Todos[0].ID)
			return err
		},
	}
	create.Flags().StringVar(&form.Description, "description", "", "Details")
	create.Flags().StringVar(&form.Priority, "priority", "", "low, medium or high (default medium)")
	create.Flags().StringVar(&form.DueDate, "due", "", "Due date, YYYY-MM-DD")
	cmd.AddCommand(create)

	cmd.AddCommand(todoUpdateCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <board-id> <todo-id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			return c.DeleteTodo(cmd.Context(), args[0], args[1])
		},
	})

	return cmd
}

func todoUpdateCmd() *cobra.Command {
	var (
		patch            model.TodoPatch
		description, due string
		completed        bool
		clearDescription bool
	)

	cmd := &cobra.Command{
		Use:   "update <board-id> <todo-id>",
		Short: "Change fields of a todo",
		Long: "Only the flags you pass are sent. --due \"\" clears the due date and " +
			"--clear-description removes the description.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("description") {
				patch.Description = model.Some(description)
			}
			if clearDescription {
				patch.Description = model.Null[string]()
			}
			if flags.Changed("due") {
				patch.DueDate = model.Some(due)
			}
			if flags.Changed("completed") {
				patch.Completed = model.Some(completed)
			}

			todo, err := c.UpdateTodo(cmd.Context(), args[0], args[1], patch)
			if err != nil {
				return err
			}
			v := view.NewBoard(c, args[0])
			v.Todos = []*model.Todo{todo}
			return v.Render(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&patch.Title, "title", "", "New title")
	cmd.Flags().StringVar(&patch.Status, "status", "", "todo, in_progress or completed")
	cmd.Flags().StringVar(&patch.Priority, "priority", "", "low, medium or high")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().BoolVar(&clearDescription, "clear-description", false, "Remove the description")
	cmd.Flags().StringVar(&due, "due", "", "Due date, YYYY-MM-DD (empty clears)")
	cmd.Flags().BoolVar(&completed, "completed", false, "Mark completed (--completed=false to unmark)")
	return cmd
}
