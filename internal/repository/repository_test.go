package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/templui/taskboard/internal/model"
)

// fixtures builds rows directly through the repositories.
type fixtures struct {
	t      *testing.T
	users  UserRepository
	boards BoardRepository
	todos  TodoRepository
	now    time.Time
}

func newFixtures(t *testing.T, db *sqlx.DB) *fixtures {
	return &fixtures{
		t:      t,
		users:  NewUserRepository(db),
		boards: NewBoardRepository(db),
		todos:  NewTodoRepository(db),
		now:    time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// tick returns strictly increasing timestamps so created_at ordering is deterministic.
func (f *fixtures) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *fixtures) user(email string) *model.User {
	f.t.Helper()
	at := f.tick()
	u := &model.User{ID: uuid.NewString(), Email: email, PasswordHash: "hash", CreatedAt: at, UpdatedAt: at}
	require.NoError(f.t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixtures) board(userID, title string) *model.Board {
	f.t.Helper()
	at := f.tick()
	b := &model.Board{ID: uuid.NewString(), UserID: userID, Title: title, Color: model.DefaultBoardColor, CreatedAt: at, UpdatedAt: at}
	require.NoError(f.t, f.boards.Create(context.Background(), b))
	return b
}

func (f *fixtures) todo(b *model.Board, title, status, priority string) *model.Todo {
	f.t.Helper()
	at := f.tick()
	td := &model.Todo{
		ID:        uuid.NewString(),
		BoardID:   b.ID,
		UserID:    b.UserID,
		Title:     title,
		Status:    status,
		Priority:  priority,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(f.t, f.todos.Create(context.Background(), td))
	return td
}
