package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/templui/taskboard/internal/cache"
	"github.com/templui/taskboard/internal/db/dbtest"
	"github.com/templui/taskboard/internal/model"
	"github.com/templui/taskboard/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	users  repository.UserRepository
	boards repository.BoardRepository
	todos  repository.TodoRepository

	credentials *CredentialService
	auth        *AuthService
	user        *UserService
	board       *BoardService
	todo        *TodoService
}

func newTestEnv(t *testing.T, listCache TodoListCache) *testEnv {
	t.Helper()
	conn := dbtest.New(t)

	env := &testEnv{
		users:       repository.NewUserRepository(conn),
		boards:      repository.NewBoardRepository(conn),
		todos:       repository.NewTodoRepository(conn),
		credentials: NewCredentialService("test-secret", time.Hour, bcrypt.MinCost),
	}
	email := NewEmailService("", "noreply@example.com", "http://localhost:3000", "Taskboard", true)
	env.auth = NewAuthService(env.users, env.credentials, email)
	env.user = NewUserService(env.users)
	env.board = NewBoardService(env.boards, env.todos, listCache)
	env.todo = NewTodoService(env.todos, env.boards, listCache)
	return env
}

func (e *testEnv) register(t *testing.T, email string) *model.Session {
	t.Helper()
	s, err := e.auth.Register(context.Background(), model.RegisterInput{Email: email, Password: "Abcdef12"})
	require.NoError(t, err)
	return s
}

func (e *testEnv) newBoard(t *testing.T, userID, title string) *model.Board {
	t.Helper()
	b, err := e.board.Create(context.Background(), userID, model.BoardInput{Title: title})
	require.NoError(t, err)
	return b
}

func (e *testEnv) newTodo(t *testing.T, userID, boardID, title string) *model.Todo {
	t.Helper()
	td, err := e.todo.Create(context.Background(), userID, boardID, model.TodoInput{Title: title})
	require.NoError(t, err)
	return td
}

// memoryCache is an in-process TodoListCache that counts calls.
type memoryCache struct {
	mu    sync.Mutex
	gens  map[string]int64
	lists map[string][]*model.Todo
	hits  int
	sets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{gens: map[string]int64{}, lists: map[string][]*model.Todo{}}
}

func (c *memoryCache) Generation(_ context.Context, boardID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[boardID], nil
}

func (c *memoryCache) GetList(_ context.Context, boardID string, gen int64, filter model.TodoFilter) ([]*model.Todo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list, ok := c.lists[cache.ListKey(boardID, gen, filter)]
	if ok {
		c.hits++
	}
	return list, nil
}

func (c *memoryCache) SetList(_ context.Context, boardID string, gen int64, filter model.TodoFilter, list []*model.Todo) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.lists[cache.ListKey(boardID, gen, filter)] = list
	return nil
}

func (c *memoryCache) InvalidateBoard(_ context.Context, boardID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[boardID]++
	for key := range c.lists {
		if strings.HasPrefix(key, "taskboard:todos:"+boardID+":") {
			delete(c.lists, key)
		}
	}
	return nil
}

// gatedTodos pauses the first Todos call after it has read the store,
// until release is closed. The read result is then returned together
// with the caller's context error.
type gatedTodos struct {
	repository.TodoRepository
	once    sync.Once
	loaded  chan struct{}
	release chan struct{}
}

func newGatedTodos(repo repository.TodoRepository) *gatedTodos {
	return &gatedTodos{TodoRepository: repo, loaded: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedTodos) Todos(ctx context.Context, boardID string, filter model.TodoFilter) ([]*model.Todo, error) {
	list, err := g.TodoRepository.Todos(ctx, boardID, filter)
	if err != nil {
		return nil, err
	}
	gate := false
	g.once.Do(func() { gate = true })
	if gate {
		close(g.loaded)
		<-g.release
	}
	return list, ctx.Err()
}
