// Package client is a typed HTTP client for the taskboard API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/templui/taskboard/internal/model"
)

var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-2xx response. Message is the server's envelope message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

// New creates a client for baseURL (e.g. http://localhost:5000/api).
// The token is read from tokens before every request; register and
// login write it back.
func New(baseURL string, tokens TokenStore) *Client {
	if tokens == nil {
		tokens = &MemoryTokenStore{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
}

// ============================================================================
// Auth
// ============================================================================

func (c *Client) Register(ctx context.Context, in model.RegisterInput) (*model.Session, error) {
	var session model.Session
	err := c.do(ctx, http.MethodPost, "/auth/register", in, &session)
	if err != nil {
		return nil, err
	}
	return &session, c.tokens.Save(session.Token)
}

func (c *Client) Login(ctx context.Context, email, password string) (*model.Session, error) {
	var session model.Session
	err := c.do(ctx, http.MethodPost, "/auth/login", model.LoginInput{Email: email, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	return &session, c.tokens.Save(session.Token)
}

// Logout forgets the stored token. Tokens are stateless, so the server is not contacted.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

func (c *Client) Profile(ctx context.Context) (*model.PublicUser, error) {
	var user model.PublicUser
	err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in model.ProfileInput) (*model.PublicUser, error) {
	var user model.PublicUser
	err := c.do(ctx, http.MethodPatch, "/auth/profile", in, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ============================================================================
// Boards
// ============================================================================

func (c *Client) CreateBoard(ctx context.Context, in model.BoardInput) (*model.Board, error) {
	var board model.Board
	err := c.do(ctx, http.MethodPost, "/boards", in, &board)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *Client) Boards(ctx context.Context) ([]*model.Board, error) {
	var boards []*model.Board
	err := c.do(ctx, http.MethodGet, "/boards", nil, &boards)
	if err != nil {
		return nil, err
	}
	return boards, nil
}

func (c *Client) Board(ctx context.Context, boardID string) (*model.BoardDetail, error) {
	detail := model.BoardDetail{Board: &model.Board{}}
	err := c.do(ctx, http.MethodGet, "/boards/"+url.PathEscape(boardID), nil, &detail)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) UpdateBoard(ctx context.Context, boardID string, in model.BoardInput) (*model.Board, error) {
	var board model.Board
	err := c.do(ctx, http.MethodPatch, "/boards/"+url.PathEscape(boardID), in, &board)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *Client) DeleteBoard(ctx context.Context, boardID string) error {
	return c.do(ctx, http.MethodDelete, "/boards/"+url.PathEscape(boardID), nil, nil)
}

// ============================================================================
// Todos
// ============================================================================

func todosPath(boardID string) string {
	return "/boards/" + url.PathEscape(boardID) + "/todos"
}

func (c *Client) CreateTodo(ctx context.Context, boardID string, in model.TodoInput) (*model.Todo, error) {
	var todo model.Todo
	err := c.do(ctx, http.MethodPost, todosPath(boardID), in, &todo)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *Client) Todos(ctx context.Context, boardID string, filter model.TodoFilter) ([]*model.Todo, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.Priority != "" {
		q.Set("priority", filter.Priority)
	}
	path := todosPath(boardID)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var todos []*model.Todo
	err := c.do(ctx, http.MethodGet, path, nil, &todos)
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *Client) Todo(ctx context.Context, boardID, todoID string) (*model.Todo, error) {
	var todo model.Todo
	err := c.do(ctx, http.MethodGet, todosPath(boardID)+"/"+url.PathEscape(todoID), nil, &todo)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *Client) UpdateTodo(ctx context.Context, boardID, todoID string, patch model.TodoPatch) (*model.Todo, error) {
	var todo model.Todo
	err := c.do(ctx, http.MethodPatch, todosPath(boardID)+"/"+url.PathEscape(todoID), patch, &todo)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *Client) DeleteTodo(ctx context.Context, boardID, todoID string) error {
	return c.do(ctx, http.MethodDelete, todosPath(boardID)+"/"+url.PathEscape(todoID), nil, nil)
}

// do sends one request and decodes the envelope's data into out.
// There are no retries.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Load()
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	err = json.NewDecoder(resp.Body).Decode(&env)
	if err != nil && !errors.Is(err, io.EOF) {
		if resp.StatusCode >= 300 {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	err = json.Unmarshal(env.Data, out)
	if err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
