package routes

import (
	"net/http"

	"github.com/templui/taskboard/internal/app"
	"github.com/templui/taskboard/internal/handler"
	"github.com/templui/taskboard/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService, app.UserService)
	board := handler.NewBoardHandler(app.BoardService)
	todo := handler.NewTodoHandler(app.TodoService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /health", handler.Health)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth(app.Cfg.AuthRateLimit, app.Cfg.AuthRateWindow, app.Cfg.TrustProxy)

	mux.HandleFunc("POST /api/auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))

	// ============================================================================
	// PROTECTED ROUTES (bearer token required)
	// ============================================================================

	// Profile
	mux.HandleFunc("GET /api/auth/profile", middleware.RequireAuth(auth.Profile))
	mux.HandleFunc("PATCH /api/auth/profile", middleware.RequireAuth(auth.UpdateProfile))

	// Boards
	mux.HandleFunc("POST /api/boards", middleware.RequireAuth(board.Create))
	mux.HandleFunc("GET /api/boards", middleware.RequireAuth(board.List))
	mux.HandleFunc("GET /api/boards/{boardId}", middleware.RequireAuth(board.Get))
	mux.HandleFunc("PATCH /api/boards/{boardId}", middleware.RequireAuth(board.Update))
	mux.HandleFunc("DELETE /api/boards/{boardId}", middleware.RequireAuth(board.Delete))

	// Todos (scoped to a board)
	mux.HandleFunc("POST /api/boards/{boardId}/todos", middleware.RequireAuth(todo.Create))
	mux.HandleFunc("GET /api/boards/{boardId}/todos", middleware.RequireAuth(todo.List))
	mux.HandleFunc("GET /api/boards/{boardId}/todos/{todoId}", middleware.RequireAuth(todo.Get))
	mux.HandleFunc("PATCH /api/boards/{boardId}/todos/{todoId}", middleware.RequireAuth(todo.Update))
	mux.HandleFunc("DELETE /api/boards/{boardId}/todos/{todoId}", middleware.RequireAuth(todo.Delete))

	// Everything else
	mux.HandleFunc("/", handler.NotFound)

	// Apply global middleware
	return middleware.Chain(mux,
		middleware.RequestLogging,
		middleware.Recover,
		middleware.CORS(app.Cfg.FrontendURL),
		middleware.AuthMiddleware(app.CredentialService),
	)
}
