package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/taskboard/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	ByID(ctx context.Context, id string) (*model.User, error)
	ByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, email, password_hash, first_name, last_name, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *userRepository) ByID(ctx context.Context, id string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) ByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateProfile writes the name fields and bumps updated_at.
func (r *userRepository) UpdateProfile(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET first_name = $1, last_name = $2, updated_at = $3 WHERE id = $4`

	user.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query, user.FirstName, user.LastName, user.UpdatedAt, user.ID)
	if err != nil {
		return err
	}

	return expectOneRow(result, ErrUserNotFound)
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET last_login = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return err
	}

	return expectOneRow(result, ErrUserNotFound)
}

// isUniqueViolation works for both SQLite and PostgreSQL
func isUniqueViolation(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value")
}

func expectOneRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return notFound
	}

	return nil
}
