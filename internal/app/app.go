package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/templui/taskboard/internal/cache"
	"github.com/templui/taskboard/internal/config"
	"github.com/templui/taskboard/internal/db"
	"github.com/templui/taskboard/internal/repository"
	"github.com/templui/taskboard/internal/service"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	Redis             *redis.Client
	CredentialService *service.CredentialService
	AuthService       *service.AuthService
	UserService       *service.UserService
	EmailService      *service.EmailService
	BoardService      *service.BoardService
	TodoService       *service.TodoService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	if cfg.AutoMigrate {
		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Cache (optional)
	var rdb *redis.Client
	if cfg.CacheEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		rdb, err = cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("failed to initialize cache: %w", err)
		}
		slog.Info("todo cache enabled", "ttl", cfg.CacheTTL)
	}

	return NewWithStore(cfg, database, rdb), nil
}

// NewWithStore wires services around an open database and an optional
// Redis client. A nil client disables the todo list cache.
func NewWithStore(cfg *config.Config, database *sqlx.DB, rdb *redis.Client) *App {
	// Repositories
	userRepository := repository.NewUserRepository(database)
	boardRepository := repository.NewBoardRepository(database)
	todoRepository := repository.NewTodoRepository(database)

	var listCache service.TodoListCache
	if rdb != nil {
		listCache = cache.NewTodoCache(rdb, cfg.CacheTTL)
	}

	// Services
	credentialService := service.NewCredentialService(cfg.JWTSecret, cfg.JWTExpiry, cfg.BcryptCost)
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(userRepository, credentialService, emailService)
	userService := service.NewUserService(userRepository)
	boardService := service.NewBoardService(boardRepository, todoRepository, listCache)
	todoService := service.NewTodoService(todoRepository, boardRepository, listCache)

	return &App{
		Cfg:               cfg,
		DB:                database,
		Redis:             rdb,
		CredentialService: credentialService,
		AuthService:       authService,
		UserService:       userService,
		EmailService:      emailService,
		BoardService:      boardService,
		TodoService:       todoService,
	}
}

func (a *App) Close() error {
	if a.Redis != nil {
		err := a.Redis.Close()
		if err != nil {
			slog.Warn("failed to close redis", "error", err)
		}
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
