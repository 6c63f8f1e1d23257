package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/templui/taskboard/internal/client"
	"golang.org/x/term"
)

const defaultAPIURL = "http://localhost:5000/api"

var (
	apiURL    string
	tokenFile string
)

// readPassword is swapped out in tests.
var readPassword = term.ReadPassword

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "taskboard",
		Short:        "Taskboard server and command-line client",
		SilenceUsage: true,
	}

	apiDefault := os.Getenv("TASKBOARD_API_URL")
	if apiDefault == "" {
		apiDefault = defaultAPIURL
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", apiDefault, "API base URL or set TASKBOARD_API_URL env")
	rootCmd.PersistentFlags().StringVar(&tokenFile, "token-file", "", "Token file (default: <user config dir>/taskboard/token)")

	// Server side
	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(MigrateCmd())

	// Client side
	rootCmd.AddCommand(RegisterCmd())
	rootCmd.AddCommand(LoginCmd())
	rootCmd.AddCommand(LogoutCmd())
	rootCmd.AddCommand(ProfileCmd())
	rootCmd.AddCommand(BoardsCmd())
	rootCmd.AddCommand(TodosCmd())

	return rootCmd
}

func newClient() (*client.Client, error) {
	path := tokenFile
	if path == "" {
		var err error
		path, err = client.DefaultTokenPath()
		if err != nil {
			return nil, err
		}
	}
	return client.New(apiURL, &client.FileTokenStore{Path: path}), nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// otherwise a single line.
func promptPassword(cmd *cobra.Command) (string, error) {
	w := cmd.ErrOrStderr()
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		pw, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}

	var line string
	_, err := fmt.Fscanln(cmd.InOrStdin(), &line)
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}

// Hint suggests a next step for an error returned by the command that ran,
// or "" when there is nothing useful to add.
func Hint(ran *cobra.Command, err error) string {
	if errors.Is(err, client.ErrUnavailable) {
		return "Is the server running? Check --api or TASKBOARD_API_URL."
	}
	if client.StatusOf(err) != http.StatusUnauthorized || ran == nil {
		return ""
	}
	switch ran.Name() {
	case "login", "register":
		return ""
	}
	return "Not logged in or session expired. Run: taskboard login"
}
