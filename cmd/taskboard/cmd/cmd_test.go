package cmd

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/taskboard/internal/app"
	"github.com/templui/taskboard/internal/config"
	"github.com/templui/taskboard/internal/db/dbtest"
	"github.com/templui/taskboard/internal/routes"
	"golang.org/x/crypto/bcrypt"
)

type cli struct {
	t         *testing.T
	api       string
	tokenFile string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	cfg := &config.Config{
		AppEnv:      "development",
		FrontendURL: "http://localhost:3000",
		JWTSecret:   "test-secret",
		JWTExpiry:   time.Hour,
		BcryptCost:  bcrypt.MinCost,
	}
	srv := httptest.NewServer(routes.SetupRoutes(app.NewWithStore(cfg, dbtest.New(t), nil)))
	t.Cleanup(srv.Close)

	return &cli{
		t:         t,
		api:       srv.URL + "/api",
		tokenFile: filepath.Join(t.TempDir(), "token"),
	}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	root := RootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(append([]string{"--api", c.api, "--token-file", c.tokenFile}, args...))
	err := root.Execute()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, out)
	return out
}

func TestCLI_BoardAndTodoWorkflow(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("register", "--email", "a@x.com", "--password", "Abcdef12", "--first-name", "Ada")
	assert.Contains(t, out, "Registered a@x.com")

	out = c.mustRun("profile")
	assert.Contains(t, out, "a@x.com")
	assert.Contains(t, out, "Ada")

	boardID := strings.TrimSpace(c.mustRun("boards", "create", "Work", "--description", "day job"))
	require.NotEmpty(t, boardID)

	out = c.mustRun("boards", "list")
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "#3498db")

	todoID := strings.TrimSpace(c.mustRun("todos", "create", boardID, "Write report", "--priority", "high", "--due", "2026-03-01"))
	require.NotEmpty(t, todoID)

	out = c.mustRun("todos", "update", boardID, todoID, "--status", "in_progress", "--due", "")
	assert.Contains(t, out, "In Progress")
	assert.NotContains(t, out, "2026-03-01")

	out = c.mustRun("todos", "list", boardID, "--priority", "high")
	assert.Contains(t, out, "Write report")

	out = c.mustRun("boards", "show", boardID, "--filter", "completed")
	assert.Contains(t, out, "No todos in this view")

	c.mustRun("todos", "delete", boardID, todoID)
	out = c.mustRun("boards", "show", boardID)
	assert.Contains(t, out, "No todos in this view")

	c.mustRun("boards", "delete", boardID)
	out = c.mustRun("boards", "list")
	assert.Contains(t, out, "No boards yet")
}

func TestCLI_LoginLogout(t *testing.T) {
	c := newCLI(t)
	c.mustRun("register", "--email", "a@x.com", "--password", "Abcdef12")
	c.mustRun("logout")

	_, err := c.run("boards", "list")
	assert.Error(t, err)
	assert.Equal(t, "Not logged in or session expired. Run: taskboard login", Hint(BoardsCmd(), err))

	_, err = c.run("login", "--email", "a@x.com", "--password", "wrong")
	assert.ErrorContains(t, err, "Invalid credentials")
	assert.Empty(t, Hint(LoginCmd(), err))

	out := c.mustRun("login", "--email", "A@X.com", "--password", "Abcdef12")
	assert.Contains(t, out, "Welcome, a@x.com")

	c.mustRun("profile", "update", "--first-name", "Ada")
	out = c.mustRun("login", "--email", "a@x.com", "--password", "Abcdef12")
	assert.Contains(t, out, "Welcome, Ada")
}

func TestHint_ServerUnavailable(t *testing.T) {
	c := &cli{t: t, api: "http://127.0.0.1:1/api", tokenFile: filepath.Join(t.TempDir(), "token")}
	_, err := c.run("boards", "list")
	require.Error(t, err)
	assert.Contains(t, Hint(BoardsCmd(), err), "Is the server running?")
	assert.Empty(t, Hint(BoardsCmd(), nil))
}

func TestCLI_RejectsUnknownFilter(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("boards", "show", "b1", "--filter", "done")
	assert.ErrorContains(t, err, "unknown filter")
}
