package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/taskboard/internal/db/dbtest"
	"github.com/templui/taskboard/internal/model"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	f := newFixtures(t, dbtest.New(t))
	ctx := context.Background()

	u := f.user("a@x.com")

	byID, err := f.users.ByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
	assert.Nil(t, byID.FirstName)
	assert.Nil(t, byID.LastLogin)
	assert.True(t, u.CreatedAt.Equal(byID.CreatedAt))

	byEmail, err := f.users.ByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = f.users.ByEmail(ctx, "missing@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = f.users.ByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	f := newFixtures(t, dbtest.New(t))
	first := f.user("a@x.com")

	dup := *first
	dup.ID = "other"
	err := f.users.Create(context.Background(), &dup)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepository_UpdateProfileAndLastLogin(t *testing.T) {
	f := newFixtures(t, dbtest.New(t))
	ctx := context.Background()
	u := f.user("a@x.com")

	first, last := "Ada", "Lovelace"
	u.FirstName, u.LastName = &first, &last
	require.NoError(t, f.users.UpdateProfile(ctx, u))

	at := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, f.users.TouchLastLogin(ctx, u.ID, at))

	got, err := f.users.ByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FirstName)
	assert.Equal(t, "Ada", *got.FirstName)
	assert.Equal(t, "Lovelace", *got.LastName)
	require.NotNil(t, got.LastLogin)
	assert.True(t, at.Equal(*got.LastLogin))

	assert.ErrorIs(t, f.users.TouchLastLogin(ctx, "missing", at), ErrUserNotFound)
}

func TestUserRepository_StoreErrorsPropagate(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer sqlDB.Close()

	repo := NewUserRepository(sqlx.NewDb(sqlDB, "sqlmock"))
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE email = $1`)).
		WithArgs("a@x.com").
		WillReturnError(boom)

	_, err = repo.ByEmail(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUserNotFound)

	mock.ExpectExec(`UPDATE users SET first_name`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	first := "Ada"
	err = repo.UpdateProfile(context.Background(), &model.User{ID: "u1", FirstName: &first})
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
