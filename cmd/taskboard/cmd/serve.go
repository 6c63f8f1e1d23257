package cmd

import (
	"github.com/spf13/cobra"
	"github.com/templui/taskboard/internal/server"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Start(cmd.Context())
		},
	}
}
