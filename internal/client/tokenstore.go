package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the bearer token between invocations.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single 0600 file.
type FileTokenStore struct {
	Path string
}

// DefaultTokenPath is $XDG_CONFIG_HOME/taskboard/token (or the OS equivalent).
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "taskboard", "token"), nil
}

// Load returns "" when no token has been saved.
func (s *FileTokenStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileTokenStore) Save(token string) error {
	err := os.MkdirAll(filepath.Dir(s.Path), 0o700)
	if err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryTokenStore holds the token for the life of the process.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	return s.Save("")
}
