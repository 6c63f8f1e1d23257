package server

import (
	"context"
	"net"
	"log/slog"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/taskboard/internal/app"
	"github.com/templui/taskboard/internal/config"
	"github.com/templui/taskboard/internal/db/dbtest"
	"golang.org/x/crypto/bcrypt"
)

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}

func testApp(t *testing.T) *app.App {
	cfg := &config.Config{
		AppEnv:       "development",
		Port:         freePort(t),
		JWTSecret:    "test-secret",
		JWTExpiry:    time.Hour,
		BcryptCost:   bcrypt.MinCost,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  5 * time.Second,
	}
	return app.NewWithStore(cfg, dbtest.New(t), nil)
}

func TestNew_UsesConfiguredTimeouts(t *testing.T) {
	a := testApp(t)
	srv := New(a)

	assert.Equal(t, ":"+a.Cfg.Port, srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, 5*time.Second, srv.WriteTimeout)
	assert.Equal(t, 5*time.Second, srv.IdleTimeout)
	assert.NotNil(t, srv.Handler)
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	a := testApp(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, a) }()

	url := "http://127.0.0.1:" + a.Cfg.Port + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStart_LoadsConfigAndServesUntilCancelled(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	port := freePort(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("PORT", port)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_CONNECTION", filepath.Join(t.TempDir(), "taskboard.db")+"?_pragma=foreign_keys(1)")
	t.Setenv("REDIS_URL", "")
	t.Setenv("SENTRY_DSN", "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- Start(ctx) }()

	url := "http://127.0.0.1:" + port + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
